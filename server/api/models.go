package api

import (
	"github.com/adrianliechti/smartsearch/pkg/credential"
)

type SearchRequest struct {
	Query string `json:"query"`

	Filter string `json:"filter,omitempty"`
	Model  string `json:"model,omitempty"`

	APIKeys *credential.Keys `json:"apiKeys,omitempty"`
}

type SearchResponse struct {
	Query string `json:"query"`

	Filter string `json:"filter"`
	Model  string `json:"model"`

	Results []SearchResult `json:"results"`
	Summary string         `json:"summary"`
}

type SearchResult struct {
	ID string `json:"id"`

	Title string `json:"title"`
	URL   string `json:"url"`

	PublishedDate *string  `json:"publishedDate,omitempty"`
	Author        *string  `json:"author,omitempty"`
	Score         *float64 `json:"score,omitempty"`

	Snippet string `json:"snippet"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
