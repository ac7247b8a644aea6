package xai

import (
	"github.com/adrianliechti/smartsearch/pkg/provider"
	"github.com/adrianliechti/smartsearch/pkg/provider/openai"
)

// DefaultURL is the OpenAI compatible endpoint of xAI.
const DefaultURL = "https://api.x.ai/v1/"

var _ provider.Completer = (*openai.Completer)(nil)

// NewCompleter returns a Grok completer speaking the OpenAI chat protocol.
func NewCompleter(url, model string, options ...openai.Option) (*openai.Completer, error) {
	if url == "" {
		url = DefaultURL
	}

	options = append([]openai.Option{openai.WithName("Grok")}, options...)

	return openai.NewCompleter(url, model, options...)
}
