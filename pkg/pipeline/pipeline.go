package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/adrianliechti/smartsearch/pkg/credential"
	"github.com/adrianliechti/smartsearch/pkg/searcher"
	"github.com/adrianliechti/smartsearch/pkg/summarizer"
)

const (
	// ResultLimit caps the number of search results per request.
	ResultLimit = 5

	NoResults      = "No results found to summarize."
	NotImplemented = "Selected model provider not implemented."

	MissingSearchKey = "Exa API Key is missing. Please add it in Settings."
)

// Providers creates credential bound clients for a single request.
type Providers interface {
	Searcher(token string) (searcher.Provider, error)
	Summarizer(model Model, token string) (summarizer.Provider, error)
}

type Request struct {
	Query string

	Filter searcher.Filter
	Model  Model

	Keys *credential.Keys
}

type Response struct {
	Query string

	Filter searcher.Filter
	Model  Model

	Results []Item
	Summary Summary
}

// Summary is either generated text or the failure of the selected provider.
type Summary struct {
	Provider string

	Text string
	Err  error
}

func (s Summary) String() string {
	if s.Err != nil {
		return "Error generating summary with " + s.Provider + ": " + s.Err.Error()
	}

	return s.Text
}

type Pipeline struct {
	keys      credential.Set
	providers Providers
}

func New(keys credential.Set, providers Providers) *Pipeline {
	return &Pipeline{
		keys:      keys,
		providers: providers,
	}
}

func (p *Pipeline) Search(ctx context.Context, req Request) (*Response, error) {
	keys := credential.Resolve(req.Keys, p.keys)

	slog.InfoContext(ctx, "search request",
		"model", string(req.Model),
		"filter", string(req.Filter),
		"keys", keys.Presence(),
	)

	if keys.Exa == "" {
		return nil, &ConfigError{Message: MissingSearchKey}
	}

	if strings.TrimSpace(req.Query) == "" {
		return nil, &InputError{Message: "query is required"}
	}

	s, err := p.providers.Searcher(keys.Exa)

	if err != nil {
		return nil, err
	}

	limit := ResultLimit

	results, err := s.Search(ctx, req.Query, &searcher.SearchOptions{
		Limit:  &limit,
		Filter: req.Filter,
	})

	if err != nil {
		return nil, &SearchError{Err: err}
	}

	slog.InfoContext(ctx, "search completed", "results", len(results))

	resp := &Response{
		Query: req.Query,

		Filter: req.Filter,
		Model:  req.Model,

		Results: make([]Item, 0, len(results)),
	}

	for _, r := range results {
		resp.Results = append(resp.Results, Normalize(r))
	}

	if len(results) == 0 {
		resp.Summary = Summary{Text: NoResults}
		return resp, nil
	}

	sources := make([]string, 0, len(results))

	for _, r := range results {
		sources = append(sources, Source(r))
	}

	resp.Summary = p.summarize(ctx, req.Model, keys, req.Query, sources)

	if resp.Summary.Err != nil {
		slog.WarnContext(ctx, "summary failed", "model", string(req.Model), "error", resp.Summary.Err)
	}

	return resp, nil
}

func (p *Pipeline) summarize(ctx context.Context, model Model, keys credential.Set, query string, sources []string) Summary {
	name, ok := model.Name()

	if !ok {
		return Summary{Text: NotImplemented}
	}

	token := keys.Token(string(model))

	if token == "" {
		return Summary{Provider: name, Err: missingKeyError(name)}
	}

	s, err := p.providers.Summarizer(model, token)

	if err != nil {
		return Summary{Provider: name, Err: err}
	}

	result, err := s.Summarize(ctx, sources, &summarizer.SummarizeOptions{
		Query: query,
	})

	if err != nil {
		return Summary{Provider: name, Err: err}
	}

	text := result.Text

	if text == "" {
		text = summarizer.NoSummary
	}

	return Summary{Provider: name, Text: text}
}
