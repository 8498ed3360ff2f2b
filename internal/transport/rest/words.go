package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/internal/service/word"
)

// wordService defines the minimal interface needed by WordHandler.
type wordService interface {
	CreateWord(ctx context.Context, input word.CreateWordInput) (*domain.Word, error)
	FindDuplicate(ctx context.Context, text string) (*domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	UpdateWord(ctx context.Context, input word.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	StarWord(ctx context.Context, wordID uuid.UUID) (*word.StarResult, error)

	AddDescription(ctx context.Context, input word.AddDescriptionInput) (*domain.Description, error)
	UpdateDescription(ctx context.Context, input word.UpdateDescriptionInput) (*domain.Description, error)
	DeleteDescription(ctx context.Context, descriptionID uuid.UUID) error
	AddExample(ctx context.Context, input word.AddExampleInput) (*domain.Example, error)
	UpdateExample(ctx context.Context, input word.UpdateExampleInput) (*domain.Example, error)
	DeleteExample(ctx context.Context, exampleID uuid.UUID) error
}

// WordHandler serves word REST endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type createWordRequest struct {
	Text        string `json:"text"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type updateWordRequest struct {
	Text string `json:"text"`
}

type subEntityRequest struct {
	Text string `json:"text"`
}

type wordResponse struct {
	ID           string              `json:"id"`
	Text         string              `json:"text"`
	Stars        int                 `json:"stars"`
	Descriptions []subEntityResponse `json:"descriptions,omitempty"`
	Examples     []subEntityResponse `json:"examples,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

type subEntityResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsInitial bool      `json:"is_initial"`
	CreatedAt time.Time `json:"created_at"`
}

type starResponse struct {
	WordID            string `json:"word_id"`
	Text              string `json:"text"`
	Stars             int    `json:"stars"`
	PromptDescription bool   `json:"prompt_description"`
	PromptExample     bool   `json:"prompt_example"`
}

// Create handles POST /words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateWord(r.Context(), word.CreateWordInput{
		Text:        req.Text,
		Description: req.Description,
		Example:     req.Example,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(created))
}

// List handles GET /words.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.WordFilter{
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Limit:     queryInt(r, "limit"),
		Offset:    queryInt(r, "offset"),
	}
	if v := queryInt(r, "min_stars"); v > 0 {
		filter.MinStars = &v
	}

	words, err := h.svc.ListWords(r.Context(), filter)
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

// Duplicate handles GET /words/duplicate?text=.
func (h *WordHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.FindDuplicate(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(found))
}

// Get handles GET /words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(found))
}

// Update handles PATCH /words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateWord(r.Context(), word.UpdateWordInput{WordID: id, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(updated))
}

// Delete handles DELETE /words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Star handles POST /words/{id}/star.
func (h *WordHandler) Star(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.StarWord(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, starResponse{
		WordID:            result.WordID.String(),
		Text:              result.Text,
		Stars:             result.NewStars,
		PromptDescription: result.PromptDescription,
		PromptExample:     result.PromptExample,
	})
}

// AddDescription handles POST /words/{id}/descriptions.
func (h *WordHandler) AddDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req subEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddDescription(r.Context(), word.AddDescriptionInput{WordID: id, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDescriptionResponse(created))
}

// UpdateDescription handles PATCH /descriptions/{id}.
func (h *WordHandler) UpdateDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req subEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateDescription(r.Context(), word.UpdateDescriptionInput{DescriptionID: id, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDescriptionResponse(updated))
}

// DeleteDescription handles DELETE /descriptions/{id}.
func (h *WordHandler) DeleteDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteDescription(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddExample handles POST /words/{id}/examples.
func (h *WordHandler) AddExample(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req subEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddExample(r.Context(), word.AddExampleInput{WordID: id, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExampleResponse(created))
}

// UpdateExample handles PATCH /examples/{id}.
func (h *WordHandler) UpdateExample(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req subEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateExample(r.Context(), word.UpdateExampleInput{ExampleID: id, Text: req.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toExampleResponse(updated))
}

// DeleteExample handles DELETE /examples/{id}.
func (h *WordHandler) DeleteExample(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteExample(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toWordResponse(w *domain.Word) wordResponse {
	resp := wordResponse{
		ID:        w.ID.String(),
		Text:      w.Text,
		Stars:     w.Stars,
		CreatedAt: w.CreatedAt,
	}
	for i := range w.Descriptions {
		resp.Descriptions = append(resp.Descriptions, toDescriptionResponse(&w.Descriptions[i]))
	}
	for i := range w.Examples {
		resp.Examples = append(resp.Examples, toExampleResponse(&w.Examples[i]))
	}
	return resp
}

func toDescriptionResponse(d *domain.Description) subEntityResponse {
	return subEntityResponse{
		ID:        d.ID.String(),
		Text:      d.Text,
		IsInitial: d.IsInitial,
		CreatedAt: d.CreatedAt,
	}
}

func toExampleResponse(e *domain.Example) subEntityResponse {
	return subEntityResponse{
		ID:        e.ID.String(),
		Text:      e.Text,
		IsInitial: e.IsInitial,
		CreatedAt: e.CreatedAt,
	}
}
