package category

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

// UpdateCategory renames and/or recolors a category. The lowercase search
// key is rewritten together with the name. Renaming onto another of the
// user's categories (case-insensitively) is rejected with a DuplicateError.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("category %s: %w", input.CategoryID, domain.ErrNotFound)
	}

	name := strings.TrimSpace(input.Name)
	nameSearch := domain.SearchKey(name)

	if nameSearch != c.NameSearch {
		existing, findErr := s.categories.FindByNameSearch(ctx, userID, nameSearch)
		if findErr != nil && !errors.Is(findErr, domain.ErrNotFound) {
			return nil, fmt.Errorf("find duplicate: %w", findErr)
		}
		if existing != nil {
			return nil, domain.NewDuplicateError("category", existing.ID.String())
		}
	}

	color := input.Color
	if color == "" {
		color = c.Color
	}

	updated, err := s.categories.Update(ctx, input.CategoryID, name, nameSearch, color)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteCategory removes a category. Links to words go with it via cascade;
// the words themselves are untouched. A category owned by someone else is
// reported as absent.
func (s *Service) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}

	if err := s.categories.Delete(ctx, categoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
	)

	return nil
}
