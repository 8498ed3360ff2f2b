package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetOrCreate(ctx context.Context, name string) (*user.GetOrCreateResult, error)
	Profile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, name string) (*domain.User, error)
	FindByCode(ctx context.Context, code string) (*domain.User, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)
}

// UserHandler serves user profile REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type profileRequest struct {
	Name string `json:"name"`
}

type userResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	TotalScore int64     `json:"total_score"`
	IsAdmin    bool      `json:"is_admin,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type getOrCreateResponse struct {
	User    userResponse `json:"user"`
	Created bool         `json:"created"`
}

// GetOrCreate handles POST /users/me.
func (h *UserHandler) GetOrCreate(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.GetOrCreate(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, getOrCreateResponse{
		User:    toUserResponse(result.User),
		Created: result.Created,
	})
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Profile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ByCode handles GET /users/by-code/{code}.
func (h *UserHandler) ByCode(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.FindByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Leaderboard handles GET /leaderboard?limit=.
func (h *UserHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Leaderboard(r.Context(), queryInt(r, "limit"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Code:       u.Code,
		TotalScore: u.TotalScore,
		IsAdmin:    u.IsAdmin,
		CreatedAt:  u.CreatedAt,
	}
}
