package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/infinitevocab/backend/internal/service/search"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, query string) (*search.Result, error)
}

// SearchHandler serves the combined search endpoint.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchResponse struct {
	Words      []wordResponse     `json:"words"`
	Categories []categoryResponse `json:"categories"`
}

// Search handles GET /search?q=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := searchResponse{
		Words:      make([]wordResponse, 0, len(result.Words)),
		Categories: make([]categoryResponse, 0, len(result.Categories)),
	}
	for i := range result.Words {
		resp.Words = append(resp.Words, toWordResponse(&result.Words[i]))
	}
	for i := range result.Categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(&result.Categories[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}
