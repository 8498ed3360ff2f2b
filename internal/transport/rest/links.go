package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
)

// linkService defines the minimal interface needed by LinkHandler.
type linkService interface {
	Link(ctx context.Context, wordID, categoryID uuid.UUID) (*domain.WordCategoryLink, error)
	Unlink(ctx context.Context, wordID, categoryID uuid.UUID) error
	WordsForCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Word, error)
	CategoriesForWord(ctx context.Context, wordID uuid.UUID) ([]domain.Category, error)
}

// LinkHandler serves word-category link REST endpoints.
type LinkHandler struct {
	svc linkService
	log *slog.Logger
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(svc linkService, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{svc: svc, log: logger.With("handler", "link")}
}

type linkResponse struct {
	ID         string `json:"id"`
	WordID     string `json:"word_id"`
	CategoryID string `json:"category_id"`
}

// Link handles POST /words/{wordId}/categories/{categoryId}.
func (h *LinkHandler) Link(w http.ResponseWriter, r *http.Request) {
	wordID, ok := pathUUID(w, r, "wordId")
	if !ok {
		return
	}
	categoryID, ok := pathUUID(w, r, "categoryId")
	if !ok {
		return
	}

	created, err := h.svc.Link(r.Context(), wordID, categoryID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, linkResponse{
		ID:         created.ID,
		WordID:     created.WordID.String(),
		CategoryID: created.CategoryID.String(),
	})
}

// Unlink handles DELETE /words/{wordId}/categories/{categoryId}.
func (h *LinkHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	wordID, ok := pathUUID(w, r, "wordId")
	if !ok {
		return
	}
	categoryID, ok := pathUUID(w, r, "categoryId")
	if !ok {
		return
	}

	if err := h.svc.Unlink(r.Context(), wordID, categoryID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CategoryWords handles GET /categories/{id}/words.
func (h *LinkHandler) CategoryWords(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	words, err := h.svc.WordsForCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]wordResponse, 0, len(words))
	for i := range words {
		out = append(out, toWordResponse(&words[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// WordCategories handles GET /words/{id}/categories.
func (h *LinkHandler) WordCategories(w http.ResponseWriter, r *http.Request) {
	wordID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	categories, err := h.svc.CategoriesForWord(r.Context(), wordID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
