package google_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/smartsearch/pkg/provider"
	"github.com/adrianliechti/smartsearch/pkg/provider/google"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var path string
	var token string
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		token = r.Header.Get("x-goog-api-key")

		json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "## Summary\n\nClimate policy"}]}, "finishReason": "STOP"}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 7, "totalTokenCount": 19}
		}`))
	}))

	defer server.Close()

	c, err := google.NewCompleter("gemini-2.5-flash", google.WithToken("gemini-key"), google.WithURL(server.URL))
	require.NoError(t, err)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("You are a helpful research assistant."),
		provider.UserMessage("Here are the search results content"),
	}, nil)

	require.NoError(t, err)

	require.Contains(t, path, "gemini-2.5-flash:generateContent")
	require.Equal(t, "gemini-key", token)

	require.Contains(t, body, "systemInstruction")

	contents, ok := body["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 1)

	require.Equal(t, "## Summary\n\nClimate policy", completion.Text())
	require.Equal(t, 12, completion.Usage.InputTokens)
	require.Equal(t, 7, completion.Usage.OutputTokens)
}

func TestCompleteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`))
	}))

	defer server.Close()

	c, err := google.NewCompleter("gemini-2.5-flash", google.WithToken("bad"), google.WithURL(server.URL))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "API key not valid")
}
