// Package search implements prefix search across words and categories.
package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
)

type wordSearcher interface {
	SearchPrefix(ctx context.Context, userID uuid.UUID, prefix string, limit int) ([]domain.Word, error)
}

type categorySearcher interface {
	SearchPrefix(ctx context.Context, userID uuid.UUID, prefix string, limit int) ([]domain.Category, error)
}

// Service provides combined word and category search.
type Service struct {
	words      wordSearcher
	categories categorySearcher
	log        *slog.Logger
}

// NewService creates a new Search service.
func NewService(log *slog.Logger, words wordSearcher, categories categorySearcher) *Service {
	return &Service{
		words:      words,
		categories: categories,
		log:        log.With("service", "search"),
	}
}
