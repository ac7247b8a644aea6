package mcp

import (
	"net/http"

	"github.com/adrianliechti/smartsearch/pkg/mcp"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	server *mcp.Server
}

func New(s mcp.Searcher) (*Handler, error) {
	server, err := mcp.New("smartsearch", s)

	if err != nil {
		return nil, err
	}

	h := &Handler{
		server: server,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Handle("/mcp", h)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.server.ServeHTTP(w, r)
}
