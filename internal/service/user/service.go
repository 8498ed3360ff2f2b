// Package user implements profiles, share codes and the leaderboard.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/config"
	"github.com/infinitevocab/backend/internal/domain"
)

const defaultLeaderboardLimit = 10

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	SetCode(ctx context.Context, id uuid.UUID, code string) (*domain.User, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)
}

// Service provides user profile operations.
type Service struct {
	users userRepo
	cfg   config.VocabConfig
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, cfg config.VocabConfig) *Service {
	return &Service{
		users: users,
		cfg:   cfg,
		log:   log.With("service", "user"),
	}
}
