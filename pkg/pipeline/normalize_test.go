package pipeline

import (
	"strings"
	"testing"

	"github.com/adrianliechti/smartsearch/pkg/searcher"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNormalize(t *testing.T) {
	t.Run("passes fields through", func(t *testing.T) {
		item := Normalize(searcher.Result{
			ID:    "doc-1",
			URL:   "https://example.com/a",
			Title: "A",
			Text:  "short text",

			Author:        ptr("Jane"),
			PublishedDate: ptr("2024-05-01"),
			Score:         ptr(0.5),
		})

		require.Equal(t, "doc-1", item.ID)
		require.Equal(t, "A", item.Title)
		require.Equal(t, "https://example.com/a", item.URL)
		require.Equal(t, "short text...", item.Snippet)
		require.Equal(t, "Jane", *item.Author)
		require.Equal(t, "2024-05-01", *item.PublishedDate)
		require.Equal(t, 0.5, *item.Score)
	})

	t.Run("falls back to url and placeholders", func(t *testing.T) {
		item := Normalize(searcher.Result{
			URL: "https://example.com/b",
		})

		require.Equal(t, "https://example.com/b", item.ID)
		require.Equal(t, "Untitled", item.Title)
		require.Equal(t, "No preview available.", item.Snippet)
		require.Nil(t, item.Author)
		require.Nil(t, item.PublishedDate)
		require.Nil(t, item.Score)
	})

	t.Run("bounds the snippet", func(t *testing.T) {
		text := strings.Repeat("a", 150) + strings.Repeat("b", 150)

		item := Normalize(searcher.Result{URL: "https://example.com/c", Text: text})

		require.Equal(t, text[:200]+"...", item.Snippet)
		require.Len(t, item.Snippet, 203)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		text := strings.Repeat("ü", 250)

		item := Normalize(searcher.Result{URL: "https://example.com/d", Text: text})

		require.Equal(t, strings.Repeat("ü", 200)+"...", item.Snippet)
	})
}

func TestNormalizePreservesOrder(t *testing.T) {
	var results []searcher.Result

	for _, u := range []string{"https://a", "https://b", "https://c", "https://d"} {
		results = append(results, searcher.Result{URL: u})
	}

	var items []Item

	for _, r := range results {
		items = append(items, Normalize(r))
	}

	require.Len(t, items, len(results))

	for i := range results {
		require.Equal(t, results[i].URL, items[i].URL)
		require.NotEmpty(t, items[i].ID)
		require.NotEmpty(t, items[i].Title)
		require.NotEmpty(t, items[i].Snippet)
	}
}

func TestSource(t *testing.T) {
	t.Run("truncates content", func(t *testing.T) {
		text := strings.Repeat("x", 1500)

		source := Source(searcher.Result{Title: "T", URL: "https://t", Text: text})

		require.Equal(t, "Title: T\nURL: https://t\nContent: "+strings.Repeat("x", 1000)+"...", source)
	})

	t.Run("placeholder without text", func(t *testing.T) {
		source := Source(searcher.Result{Title: "T", URL: "https://t"})

		require.Equal(t, "Title: T\nURL: https://t\nContent: No text available...", source)
	})
}
