package adapter

import (
	"context"

	"github.com/adrianliechti/smartsearch/pkg/provider"
	"github.com/adrianliechti/smartsearch/pkg/summarizer"
)

var _ summarizer.Provider = (*Adapter)(nil)

type Adapter struct {
	completer provider.Completer
}

func FromCompleter(completer provider.Completer) *Adapter {
	return &Adapter{
		completer: completer,
	}
}

func (a *Adapter) Summarize(ctx context.Context, sources []string, options *summarizer.SummarizeOptions) (*summarizer.Summary, error) {
	if options == nil {
		options = new(summarizer.SummarizeOptions)
	}

	instructions, err := summarizer.Instructions(options.Query)

	if err != nil {
		return nil, err
	}

	completion, err := a.completer.Complete(ctx, []provider.Message{
		provider.SystemMessage(instructions),
		provider.UserMessage(summarizer.Content(sources)),
	}, nil)

	if err != nil {
		return nil, err
	}

	text := completion.Text()

	if text == "" {
		text = summarizer.NoSummary
	}

	return &summarizer.Summary{
		Text: text,
	}, nil
}
