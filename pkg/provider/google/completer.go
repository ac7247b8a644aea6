package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/smartsearch/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: convertSystem(messages),
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = options.Temperature
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, convertContents(messages), config)

	if err != nil {
		return nil, convertError(err)
	}

	result := &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(resp.UsageMetadata),
	}

	if resp.ModelVersion != "" {
		result.Model = resp.ModelVersion
	}

	if text := resp.Text(); text != "" {
		result.Message.Content = append(result.Message.Content, provider.TextContent(text))
	}

	return result, nil
}

func convertSystem(messages []provider.Message) *genai.Content {
	var parts []*genai.Part

	for _, m := range messages {
		if m.Role != provider.MessageRoleSystem {
			continue
		}

		for _, c := range m.Content {
			if c.Text != "" {
				parts = append(parts, genai.NewPartFromText(c.Text))
			}
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return &genai.Content{
		Parts: parts,
	}
}

func convertContents(messages []provider.Message) []*genai.Content {
	var result []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleUser:
			result = append(result, genai.NewContentFromText(m.Text(), genai.RoleUser))

		case provider.MessageRoleAssistant:
			result = append(result, genai.NewContentFromText(m.Text(), genai.RoleModel))
		}
	}

	return result
}

func convertError(err error) error {
	var apierr genai.APIError

	if errors.As(err, &apierr) {
		return fmt.Errorf("Gemini API Error (%d): %s", apierr.Code, apierr.Message)
	}

	return err
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
