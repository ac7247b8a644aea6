package otel

import (
	"context"

	"github.com/adrianliechti/smartsearch/pkg/searcher"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type Searcher interface {
	Observable
	searcher.Provider
}

type observableSearcher struct {
	provider string

	searcher searcher.Provider
}

func NewSearcher(provider string, p searcher.Provider) Searcher {
	return &observableSearcher{
		searcher: p,

		provider: provider,
	}
}

func (p *observableSearcher) otelSetup() {
}

func (p *observableSearcher) Search(ctx context.Context, query string, options *searcher.SearchOptions) ([]searcher.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "search "+p.provider)
	defer span.End()

	if options != nil && options.Filter != "" {
		span.SetAttributes(attribute.String("search.filter", string(options.Filter)))
	}

	result, err := p.searcher.Search(ctx, query, options)

	recordError(span, err)

	span.SetAttributes(attribute.Int("search.results", len(result)))

	if EnableDebug {
		span.SetAttributes(attribute.String("search.query", query))

		var urls []string

		for _, r := range result {
			urls = append(urls, r.URL)
		}

		if len(urls) > 0 {
			span.SetAttributes(attribute.StringSlice("search.urls", urls))
		}
	}

	return result, err
}
