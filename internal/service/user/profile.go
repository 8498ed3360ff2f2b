package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// Profile returns the authenticated user's profile.
func (s *Service) Profile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.users.GetByID(ctx, userID)
}

// UpdateProfile changes the authenticated user's display name.
func (s *Service) UpdateProfile(ctx context.Context, name string) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len(name) > 100 {
		return nil, domain.NewValidationError("name", "max 100 characters")
	}

	updated, err := s.users.UpdateName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("update name: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}

// FindByCode resolves a profile by its share code.
func (s *Service) FindByCode(ctx context.Context, code string) (*domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if !domain.IsValidUserCode(code) {
		return nil, domain.NewValidationError("code", "must be 8 characters from A-Z and 0-9")
	}

	return s.users.GetByCode(ctx, code)
}
