package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/smartsearch/pkg/pipeline"

	"github.com/go-chi/chi/v5"
)

// Searcher runs one search request end to end.
type Searcher interface {
	Search(ctx context.Context, req pipeline.Request) (*pipeline.Response, error)
}

type Handler struct {
	searcher Searcher
}

func New(s Searcher) (*Handler, error) {
	h := &Handler{
		searcher: s,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/search", h.handleSearch)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(ErrorResponse{
		Error: text,
	})
}
