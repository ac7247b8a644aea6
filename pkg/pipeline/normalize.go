package pipeline

import (
	"github.com/adrianliechti/smartsearch/pkg/searcher"
)

const (
	// SourceLength bounds the text of every source handed to a summarizer.
	SourceLength = 1000

	// SnippetLength bounds the preview text of a result item.
	SnippetLength = 200
)

type Item struct {
	ID string

	Title string
	URL   string

	PublishedDate *string
	Author        *string

	Score *float64

	Snippet string
}

// Normalize maps a raw provider record onto the canonical result item.
func Normalize(r searcher.Result) Item {
	item := Item{
		ID: r.ID,

		Title: r.Title,
		URL:   r.URL,

		PublishedDate: r.PublishedDate,
		Author:        r.Author,

		Score: r.Score,

		Snippet: "No preview available.",
	}

	if item.ID == "" {
		item.ID = r.URL
	}

	if item.Title == "" {
		item.Title = "Untitled"
	}

	if r.Text != "" {
		item.Snippet = truncate(r.Text, SnippetLength) + "..."
	}

	return item
}

// Source formats a raw record as summarizer input.
func Source(r searcher.Result) string {
	content := "No text available"

	if r.Text != "" {
		content = truncate(r.Text, SourceLength)
	}

	return "Title: " + r.Title + "\nURL: " + r.URL + "\nContent: " + content + "..."
}

func truncate(text string, length int) string {
	runes := []rune(text)

	if len(runes) <= length {
		return text
	}

	return string(runes[:length])
}
