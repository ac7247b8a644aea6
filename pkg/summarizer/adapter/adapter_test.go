package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/smartsearch/pkg/provider"
	"github.com/adrianliechti/smartsearch/pkg/summarizer"

	"github.com/stretchr/testify/require"
)

// mockCompleter records the messages it receives
type mockCompleter struct {
	response string
	err      error

	messages []provider.Message
}

func (m *mockCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	m.messages = messages

	if m.err != nil {
		return nil, m.err
	}

	message := provider.AssistantMessage(m.response)

	return &provider.Completion{
		Message: &message,
	}, nil
}

func TestSummarize(t *testing.T) {
	completer := &mockCompleter{response: "## Summary"}

	a := FromCompleter(completer)

	summary, err := a.Summarize(context.Background(), []string{"one", "two"}, &summarizer.SummarizeOptions{
		Query: "climate policy",
	})

	require.NoError(t, err)
	require.Equal(t, "## Summary", summary.Text)

	require.Len(t, completer.messages, 2)

	require.Equal(t, provider.MessageRoleSystem, completer.messages[0].Role)
	require.Contains(t, completer.messages[0].Text(), `"climate policy"`)

	require.Equal(t, provider.MessageRoleUser, completer.messages[1].Role)
	require.Equal(t, summarizer.Content([]string{"one", "two"}), completer.messages[1].Text())
}

func TestSummarizeEmptyText(t *testing.T) {
	a := FromCompleter(&mockCompleter{response: ""})

	summary, err := a.Summarize(context.Background(), []string{"one"}, nil)

	require.NoError(t, err)
	require.Equal(t, summarizer.NoSummary, summary.Text)
}

func TestSummarizeError(t *testing.T) {
	a := FromCompleter(&mockCompleter{err: errors.New("boom")})

	_, err := a.Summarize(context.Background(), []string{"one"}, nil)

	require.EqualError(t, err, "boom")
}
