package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/internal/service/admin"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	Promote(ctx context.Context, targetID uuid.UUID) (*domain.AdminRecord, error)
	UpdateRole(ctx context.Context, targetID uuid.UUID, role domain.AdminRole) (*domain.AdminRecord, error)
	Demote(ctx context.Context, targetID uuid.UUID) error
	ListAdmins(ctx context.Context) ([]domain.AdminRecord, error)

	AssignStudent(ctx context.Context, studentID uuid.UUID) (*domain.AdminStudentLink, error)
	RemoveStudent(ctx context.Context, studentID uuid.UUID) error
	ListStudents(ctx context.Context) ([]domain.User, error)
	AddScore(ctx context.Context, input admin.AddScoreInput) (*domain.ScoreHistoryEntry, error)
	ScoreHistory(ctx context.Context, studentID uuid.UUID, limit int) ([]domain.ScoreHistoryEntry, error)
}

// AdminHandler serves admin REST endpoints. Routes are gated by the
// RequireAdmin / RequireSuperAdmin middleware; the handler itself only
// translates requests.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type addScoreRequest struct {
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}

type adminRecordResponse struct {
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	AssignedBy string    `json:"assigned_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type scoreEntryResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	AdminID       string    `json:"admin_id"`
	ScoreDelta    int64     `json:"score_delta"`
	NewTotalScore int64     `json:"new_total_score"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
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

// Promote handles POST /admin/admins/{userId}.
func (h *AdminHandler) Promote(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	rec, err := h.svc.Promote(r.Context(), targetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAdminRecordResponse(rec))
}

// UpdateRole handles PATCH /admin/admins/{userId}.
func (h *AdminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.UpdateRole(r.Context(), targetID, domain.AdminRole(req.Role))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAdminRecordResponse(rec))
}

// Demote handles DELETE /admin/admins/{userId}.
func (h *AdminHandler) Demote(w http.ResponseWriter, r *http.Request) {
	targetID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}

	if err := h.svc.Demote(r.Context(), targetID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAdmins handles GET /admin/admins.
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.svc.ListAdmins(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]adminRecordResponse, 0, len(admins))
	for i := range admins {
		out = append(out, toAdminRecordResponse(&admins[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// AssignStudent handles POST /admin/students/{studentId}.
func (h *AdminHandler) AssignStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathUUID(w, r, "studentId")
	if !ok {
		return
	}

	link, err := h.svc.AssignStudent(r.Context(), studentID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":         link.ID,
		"admin_id":   link.AdminID.String(),
		"student_id": link.StudentID.String(),
	})
}

// RemoveStudent handles DELETE /admin/students/{studentId}.
func (h *AdminHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathUUID(w, r, "studentId")
	if !ok {
		return
	}

	if err := h.svc.RemoveStudent(r.Context(), studentID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListStudents handles GET /admin/students.
func (h *AdminHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.ListStudents(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(students))
	for i := range students {
		out = append(out, toUserResponse(&students[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddScore handles POST /admin/students/{studentId}/score.
func (h *AdminHandler) AddScore(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathUUID(w, r, "studentId")
	if !ok {
		return
	}

	var req addScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.AddScore(r.Context(), admin.AddScoreInput{
		StudentID: studentID,
		Delta:     req.Delta,
		Reason:    req.Reason,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toScoreEntryResponse(entry))
}

// ScoreHistory handles GET /admin/students/{studentId}/score-history.
func (h *AdminHandler) ScoreHistory(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathUUID(w, r, "studentId")
	if !ok {
		return
	}

	entries, err := h.svc.ScoreHistory(r.Context(), studentID, queryInt(r, "limit"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]scoreEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toScoreEntryResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func toAdminRecordResponse(rec *domain.AdminRecord) adminRecordResponse {
	return adminRecordResponse{
		UserID:     rec.UserID.String(),
		Role:       rec.Role.String(),
		AssignedBy: rec.AssignedBy.String(),
		CreatedAt:  rec.CreatedAt,
	}
}

func toScoreEntryResponse(e *domain.ScoreHistoryEntry) scoreEntryResponse {
	return scoreEntryResponse{
		ID:            e.ID.String(),
		StudentID:     e.StudentID.String(),
		AdminID:       e.AdminID.String(),
		ScoreDelta:    e.ScoreDelta,
		NewTotalScore: e.NewTotalScore,
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt,
	}
}
