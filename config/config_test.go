package config

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/smartsearch/pkg/pipeline"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"PORT", "EXA_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "GROK_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	t.Setenv("EXA_API_KEY", "env-exa")
	t.Setenv("GROK_API_KEY", "env-grok")

	c, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8080", c.Address)
	require.Equal(t, "env-exa", c.Keys.Exa)
	require.Equal(t, "env-grok", c.Keys.Grok)
	require.Empty(t, c.Keys.Gemini)
	require.Empty(t, c.Authorizers)

	for _, model := range pipeline.Models() {
		s, err := c.Summarizer(model, "token")

		require.NoError(t, err)
		require.NotNil(t, s)
	}
}

func TestParsePort(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "9090")

	c, err := Parse("")
	require.NoError(t, err)

	require.Equal(t, ":9090", c.Address)
}

func TestParseFile(t *testing.T) {
	clearEnv(t)

	t.Setenv("OPENAI_API_KEY", "env-openai")
	t.Setenv("MY_EXA_KEY", "file-exa")

	path := writeConfig(t, `
address: 127.0.0.1:3000

keys:
  exa: ${MY_EXA_KEY}
  gemini: file-gemini

authorizers:
  - type: static
    token: secret

search:
  url: https://exa.example.com

summarizers:
  openai:
    url: https://llm.example.com/v1
    model: gpt-4o
`)

	c, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:3000", c.Address)

	require.Equal(t, "file-exa", c.Keys.Exa)
	require.Equal(t, "file-gemini", c.Keys.Gemini)
	require.Equal(t, "env-openai", c.Keys.OpenAI)

	require.Len(t, c.Authorizers, 1)

	r := httptest.NewRequest("GET", "/api/search", nil)
	r.Header.Set("Authorization", "Bearer secret")

	_, err = c.Authorizers[0].Authenticate(context.Background(), r)
	require.NoError(t, err)

	s, err := c.Searcher("exa-key")
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestParseInvalid(t *testing.T) {
	clearEnv(t)

	t.Run("unknown field", func(t *testing.T) {
		path := writeConfig(t, "listen: :80\n")

		_, err := Parse(path)
		require.Error(t, err)
	})

	t.Run("unknown summarizer", func(t *testing.T) {
		path := writeConfig(t, "summarizers:\n  claude:\n    model: opus\n")

		_, err := Parse(path)
		require.ErrorContains(t, err, "invalid summarizer")
	})

	t.Run("unknown authorizer", func(t *testing.T) {
		path := writeConfig(t, "authorizers:\n  - type: oidc\n")

		_, err := Parse(path)
		require.ErrorContains(t, err, "invalid authorizer")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestProviders(t *testing.T) {
	clearEnv(t)

	c, err := Parse("")
	require.NoError(t, err)

	_, err = c.Searcher("")
	require.Error(t, err)

	_, err = c.Summarizer(pipeline.ParseModel("llama"), "token")
	require.ErrorContains(t, err, "summarizer not found")
}
