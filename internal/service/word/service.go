// Package word implements vocabulary word management: CRUD, starring with
// milestone prompts, and the description/example sub-entities.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/config"
	"github.com/infinitevocab/backend/internal/domain"
)

type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	FindByTextSearch(ctx context.Context, userID uuid.UUID, textSearch string) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	UpdateText(ctx context.Context, id uuid.UUID, text, textSearch string) (*domain.Word, error)
	SetStars(ctx context.Context, id uuid.UUID, stars int) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)

	AddDescription(ctx context.Context, d *domain.Description) (*domain.Description, error)
	GetDescription(ctx context.Context, id uuid.UUID) (*domain.Description, error)
	UpdateDescription(ctx context.Context, id uuid.UUID, text string) (*domain.Description, error)
	DeleteDescription(ctx context.Context, id uuid.UUID) error

	AddExample(ctx context.Context, e *domain.Example) (*domain.Example, error)
	GetExample(ctx context.Context, id uuid.UUID) (*domain.Example, error)
	UpdateExample(ctx context.Context, id uuid.UUID, text string) (*domain.Example, error)
	DeleteExample(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides word management operations.
type Service struct {
	words wordRepo
	tx    txManager
	cfg   config.VocabConfig
	log   *slog.Logger
}

// NewService creates a new Word service.
func NewService(log *slog.Logger, words wordRepo, tx txManager, cfg config.VocabConfig) *Service {
	return &Service{
		words: words,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "word"),
	}
}
