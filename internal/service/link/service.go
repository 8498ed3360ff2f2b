// Package link implements word-to-category associations.
package link

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
)

type linkRepo interface {
	Create(ctx context.Context, l *domain.WordCategoryLink) (*domain.WordCategoryLink, error)
	GetByID(ctx context.Context, id string) (*domain.WordCategoryLink, error)
	Delete(ctx context.Context, id string) error
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.WordCategoryLink, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.WordCategoryLink, error)
}

type wordGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
}

type categoryGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

// Service provides word-category link operations.
type Service struct {
	links      linkRepo
	words      wordGetter
	categories categoryGetter
	log        *slog.Logger
}

// NewService creates a new Link service.
func NewService(log *slog.Logger, links linkRepo, words wordGetter, categories categoryGetter) *Service {
	return &Service{
		links:      links,
		words:      words,
		categories: categories,
		log:        log.With("service", "link"),
	}
}
