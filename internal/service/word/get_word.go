package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// GetWord returns one of the authenticated user's words with descriptions
// and examples loaded. A word owned by someone else is reported as absent.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.words.GetDetailed(ctx, wordID)
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return w, nil
}

// ListWords returns the authenticated user's words. When the filter does
// not name a sort, words come back most-starred first.
func (s *Service) ListWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.SortBy == "" {
		filter.SortBy = "stars"
		filter.SortOrder = "DESC"
	}

	words, err := s.words.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}
