package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// StarResult is the outcome of starring a word. The prompt flags are
// advisory milestone signals, computed from the new star count and never
// persisted.
type StarResult struct {
	WordID            uuid.UUID
	Text              string
	NewStars          int
	PromptDescription bool
	PromptExample     bool
}

// StarWord atomically increments the word's star count. The word row is
// locked for the duration of the transaction, so concurrent stars serialize
// and none are lost. An absent word yields ErrNotFound; a word owned by a
// different user yields ErrForbidden, detected inside the transaction.
func (s *Service) StarWord(ctx context.Context, wordID uuid.UUID) (*StarResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	var result *StarResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		w, err := s.words.GetForUpdate(txCtx, wordID)
		if err != nil {
			return err
		}
		if w.UserID != userID {
			return fmt.Errorf("word %s: %w", wordID, domain.ErrForbidden)
		}

		newStars := w.Stars + 1
		if err := s.words.SetStars(txCtx, wordID, newStars); err != nil {
			return fmt.Errorf("set stars: %w", err)
		}

		milestones := domain.StarMilestones(newStars)
		result = &StarResult{
			WordID:            wordID,
			Text:              w.Text,
			NewStars:          newStars,
			PromptDescription: milestones.PromptDescription,
			PromptExample:     milestones.PromptExample,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word starred",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
		slog.Int("stars", result.NewStars),
	)

	return result, nil
}
