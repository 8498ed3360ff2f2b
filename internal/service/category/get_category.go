package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// GetCategory returns one of the authenticated user's categories. A category
// owned by someone else is reported as absent.
func (s *Service) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}

	return c, nil
}

// ListCategories returns the authenticated user's categories sorted by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
