// Package admin implements admin management: promotion, student assignment
// and score adjustments. Role sufficiency is asserted by the transport
// middleware; the service re-verifies existence and exclusivity.
package admin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
)

type adminRepo interface {
	GetAdmin(ctx context.Context, userID uuid.UUID) (*domain.AdminRecord, error)
	CreateAdmin(ctx context.Context, rec *domain.AdminRecord) (*domain.AdminRecord, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role domain.AdminRole) (*domain.AdminRecord, error)
	DeleteAdmin(ctx context.Context, userID uuid.UUID) error
	ListAdmins(ctx context.Context) ([]domain.AdminRecord, error)

	CreateStudentLink(ctx context.Context, l *domain.AdminStudentLink) (*domain.AdminStudentLink, error)
	GetLinkByStudent(ctx context.Context, studentID uuid.UUID) (*domain.AdminStudentLink, error)
	DeleteStudentLink(ctx context.Context, id string) error
	ListStudents(ctx context.Context, adminID uuid.UUID) ([]domain.User, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetTotalScore(ctx context.Context, id uuid.UUID, total int64) error
}

type scoreRepo interface {
	Append(ctx context.Context, e *domain.ScoreHistoryEntry) (*domain.ScoreHistoryEntry, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]domain.ScoreHistoryEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides admin operations.
type Service struct {
	admins adminRepo
	users  userRepo
	scores scoreRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Admin service.
func NewService(log *slog.Logger, admins adminRepo, users userRepo, scores scoreRepo, tx txManager) *Service {
	return &Service{
		admins: admins,
		users:  users,
		scores: scores,
		tx:     tx,
		log:    log.With("service", "admin"),
	}
}
