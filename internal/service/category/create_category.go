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

// CreateCategory creates a category for the authenticated user. Names are
// unique per user case-insensitively; a clash is rejected with a
// DuplicateError carrying the existing category's id.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	nameSearch := domain.SearchKey(name)

	existing, err := s.categories.FindByNameSearch(ctx, userID, nameSearch)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find duplicate: %w", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("category", existing.ID.String())
	}

	count, err := s.categories.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if count >= s.cfg.MaxCategoriesPerUser {
		return nil, domain.NewValidationError("categories", "limit reached")
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		NameSearch: nameSearch,
		Color:      color,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("name", name),
	)

	return created, nil
}
