package openai

import (
	"context"

	"github.com/adrianliechti/smartsearch/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	completions openai.ChatCompletionService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		name:  "OpenAI",
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := c.convertCompletionRequest(messages, options)

	completion, err := c.completions.New(ctx, *req)

	if err != nil {
		return nil, c.convertError(err)
	}

	result := &provider.Completion{
		ID:    completion.ID,
		Model: completion.Model,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(completion.Usage),
	}

	if len(completion.Choices) > 0 {
		choice := completion.Choices[0]

		if choice.Message.Content != "" {
			result.Message.Content = append(result.Message.Content, provider.TextContent(choice.Message.Content))
		}
	}

	return result, nil
}

func (c *Completer) convertCompletionRequest(input []provider.Message, options *provider.CompleteOptions) *openai.ChatCompletionNewParams {
	req := &openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),

		Messages: convertMessages(input),
	}

	if options.MaxTokens != nil {
		req.MaxTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	return req
}

func convertMessages(input []provider.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion

	for _, m := range input {
		switch m.Role {
		case provider.MessageRoleSystem:
			result = append(result, openai.SystemMessage(m.Text()))

		case provider.MessageRoleUser:
			result = append(result, openai.UserMessage(m.Text()))

		case provider.MessageRoleAssistant:
			result = append(result, openai.AssistantMessage(m.Text()))
		}
	}

	return result
}
