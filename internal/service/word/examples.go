package word

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// AddExample attaches a usage example to one of the user's words.
func (s *Service) AddExample(ctx context.Context, input AddExampleInput) (*domain.Example, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkWordOwnership(ctx, userID, input.WordID); err != nil {
		return nil, err
	}

	created, err := s.words.AddExample(ctx, &domain.Example{
		ID:     uuid.New(),
		WordID: input.WordID,
		UserID: userID,
		Text:   strings.TrimSpace(input.Text),
	})
	if err != nil {
		return nil, fmt.Errorf("add example: %w", err)
	}

	s.log.InfoContext(ctx, "example added",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
	)

	return created, nil
}

// UpdateExample rewrites an example's text.
func (s *Service) UpdateExample(ctx context.Context, input UpdateExampleInput) (*domain.Example, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.words.GetExample(ctx, input.ExampleID)
	if err != nil {
		return nil, err
	}
	if e.UserID != userID {
		return nil, fmt.Errorf("example %s: %w", input.ExampleID, domain.ErrNotFound)
	}

	updated, err := s.words.UpdateExample(ctx, input.ExampleID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("update example: %w", err)
	}

	return updated, nil
}

// DeleteExample removes an example, initial or not.
func (s *Service) DeleteExample(ctx context.Context, exampleID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	e, err := s.words.GetExample(ctx, exampleID)
	if err != nil {
		return err
	}
	if e.UserID != userID {
		return fmt.Errorf("example %s: %w", exampleID, domain.ErrNotFound)
	}

	if err := s.words.DeleteExample(ctx, exampleID); err != nil {
		return fmt.Errorf("delete example: %w", err)
	}

	s.log.InfoContext(ctx, "example deleted",
		slog.String("user_id", userID.String()),
		slog.String("example_id", exampleID.String()),
	)

	return nil
}
