package search

import (
	"context"
	"fmt"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

const resultLimit = 20

// Result holds the words and categories matching a search query. The two
// lists are independent; either may be empty.
type Result struct {
	Words      []domain.Word
	Categories []domain.Category
}

// Search finds the authenticated user's words and categories whose text
// starts with query, case-insensitively. An empty or whitespace-only query
// returns an empty result without touching the store.
func (s *Service) Search(ctx context.Context, query string) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prefix := domain.SearchKey(query)
	if prefix == "" {
		return &Result{}, nil
	}

	words, err := s.words.SearchPrefix(ctx, userID, prefix, resultLimit)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}

	categories, err := s.categories.SearchPrefix(ctx, userID, prefix, resultLimit)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}

	return &Result{Words: words, Categories: categories}, nil
}
