package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// UpdateWord renames a word, rewriting text and its search key in one
// statement. Renaming onto another of the user's words (case-insensitively)
// is rejected with a DuplicateError.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	w, err := s.words.GetByID(ctx, input.WordID)
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, fmt.Errorf("word %s: %w", input.WordID, domain.ErrNotFound)
	}

	text := strings.TrimSpace(input.Text)
	textSearch := domain.SearchKey(text)

	if textSearch != w.TextSearch {
		existing, findErr := s.words.FindByTextSearch(ctx, userID, textSearch)
		if findErr != nil && !errors.Is(findErr, domain.ErrNotFound) {
			return nil, fmt.Errorf("find duplicate: %w", findErr)
		}
		if existing != nil {
			return nil, domain.NewDuplicateError("word", existing.ID.String())
		}
	}

	updated, err := s.words.UpdateText(ctx, input.WordID, text, textSearch)
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word updated",
		slog.String("user_id", userID.String()),
		slog.String("word_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteWord removes a word and, via cascade, its descriptions and examples.
// A word owned by someone else is reported as absent.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	w, err := s.words.GetByID(ctx, wordID)
	if err != nil {
		return err
	}
	if w.UserID != userID {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	if err := s.words.Delete(ctx, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)

	return nil
}
