// Package category implements word category management.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/config"
	"github.com/infinitevocab/backend/internal/domain"
)

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindByNameSearch(ctx context.Context, userID uuid.UUID, nameSearch string) (*domain.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, name, nameSearch, color string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	cfg        config.VocabConfig
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, cfg config.VocabConfig) *Service {
	return &Service{
		categories: categories,
		cfg:        cfg,
		log:        log.With("service", "category"),
	}
}
