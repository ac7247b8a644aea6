package openai

import (
	"errors"
	"fmt"

	"github.com/adrianliechti/smartsearch/pkg/provider"

	"github.com/openai/openai-go/v3"
)

func (c *Config) convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		message := apierr.Message

		if message == "" {
			message = apierr.Error()
		}

		return fmt.Errorf("%s API Error (%d): %s", c.name, apierr.StatusCode, message)
	}

	return err
}

func toUsage(metadata openai.CompletionUsage) *provider.Usage {
	if metadata.TotalTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokens),
		OutputTokens: int(metadata.CompletionTokens),
	}
}
