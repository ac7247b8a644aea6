package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/smartsearch/pkg/pipeline"
	"github.com/adrianliechti/smartsearch/pkg/searcher"
)

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	resp, err := h.searcher.Search(r.Context(), pipeline.Request{
		Query: req.Query,

		Filter: searcher.ParseFilter(req.Filter),
		Model:  pipeline.ParseModel(req.Model),

		Keys: req.APIKeys,
	})

	if err != nil {
		code := errorStatus(err)

		if code >= http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "search failed", "error", err)
		}

		writeError(w, code, err)
		return
	}

	result := SearchResponse{
		Query: resp.Query,

		Filter: string(resp.Filter),
		Model:  string(resp.Model),

		Results: make([]SearchResult, 0, len(resp.Results)),
		Summary: resp.Summary.String(),
	}

	for _, item := range resp.Results {
		result.Results = append(result.Results, SearchResult{
			ID: item.ID,

			Title: item.Title,
			URL:   item.URL,

			PublishedDate: item.PublishedDate,
			Author:        item.Author,
			Score:         item.Score,

			Snippet: item.Snippet,
		})
	}

	writeJson(w, result)
}

func errorStatus(err error) int {
	var configErr *pipeline.ConfigError
	var inputErr *pipeline.InputError

	if errors.As(err, &configErr) || errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
