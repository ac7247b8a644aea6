package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/smartsearch/pkg/provider"
	"github.com/adrianliechti/smartsearch/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestComplete(t *testing.T) {
	var path string
	var authorization string
	var body chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authorization = r.Header.Get("Authorization")

		json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [
				{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "## Summary"}}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))

	defer server.Close()

	c, err := openai.NewCompleter(server.URL+"/v1", "gpt-4o-mini", openai.WithToken("sk-test"))
	require.NoError(t, err)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("be helpful"),
		provider.UserMessage("search results"),
	}, nil)

	require.NoError(t, err)

	require.Equal(t, "/v1/chat/completions", path)
	require.Equal(t, "Bearer sk-test", authorization)

	require.Equal(t, "gpt-4o-mini", body.Model)
	require.Len(t, body.Messages, 2)
	require.Equal(t, "system", body.Messages[0].Role)
	require.Equal(t, "be helpful", body.Messages[0].Content)
	require.Equal(t, "user", body.Messages[1].Role)
	require.Equal(t, "search results", body.Messages[1].Content)

	require.Equal(t, "## Summary", completion.Text())
	require.Equal(t, 10, completion.Usage.InputTokens)
	require.Equal(t, 5, completion.Usage.OutputTokens)
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "created": 1, "model": "gpt-4o-mini", "choices": []}`))
	}))

	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "gpt-4o-mini", openai.WithToken("sk-test"))
	require.NoError(t, err)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "", completion.Text())
}

func TestCompleteError(t *testing.T) {
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))

	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "grok-beta", openai.WithToken("xai-test"), openai.WithName("Grok"))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "Grok API Error (500)")
	require.Contains(t, err.Error(), "upstream exploded")

	require.Equal(t, 1, calls)
}
