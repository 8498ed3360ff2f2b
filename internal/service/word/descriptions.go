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

// AddDescription attaches a description to one of the user's words.
// Ownership is validated through the parent word.
func (s *Service) AddDescription(ctx context.Context, input AddDescriptionInput) (*domain.Description, error) {
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

	created, err := s.words.AddDescription(ctx, &domain.Description{
		ID:     uuid.New(),
		WordID: input.WordID,
		UserID: userID,
		Text:   strings.TrimSpace(input.Text),
	})
	if err != nil {
		return nil, fmt.Errorf("add description: %w", err)
	}

	s.log.InfoContext(ctx, "description added",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
	)

	return created, nil
}

// UpdateDescription rewrites a description's text. A description owned by
// someone else is reported as absent; initial descriptions are editable
// like any other.
func (s *Service) UpdateDescription(ctx context.Context, input UpdateDescriptionInput) (*domain.Description, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := s.words.GetDescription(ctx, input.DescriptionID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, fmt.Errorf("description %s: %w", input.DescriptionID, domain.ErrNotFound)
	}

	updated, err := s.words.UpdateDescription(ctx, input.DescriptionID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("update description: %w", err)
	}

	return updated, nil
}

// DeleteDescription removes a description, initial or not.
func (s *Service) DeleteDescription(ctx context.Context, descriptionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	d, err := s.words.GetDescription(ctx, descriptionID)
	if err != nil {
		return err
	}
	if d.UserID != userID {
		return fmt.Errorf("description %s: %w", descriptionID, domain.ErrNotFound)
	}

	if err := s.words.DeleteDescription(ctx, descriptionID); err != nil {
		return fmt.Errorf("delete description: %w", err)
	}

	s.log.InfoContext(ctx, "description deleted",
		slog.String("user_id", userID.String()),
		slog.String("description_id", descriptionID.String()),
	)

	return nil
}

// checkWordOwnership reports ErrNotFound for absent and foreign words alike.
func (s *Service) checkWordOwnership(ctx context.Context, userID, wordID uuid.UUID) error {
	w, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return err
	}
	if w.UserID != userID {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}
