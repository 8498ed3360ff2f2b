package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// GetOrCreateResult reports whether the profile had to be created.
type GetOrCreateResult struct {
	User    *domain.User
	Created bool
}

// GetOrCreate returns the authenticated user's profile, creating it on
// first contact. Existing profiles without a share code get one assigned
// on the way out; accounts from before codes existed are repaired here.
func (s *Service) GetOrCreate(ctx context.Context, name string) (*GetOrCreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	name = strings.TrimSpace(name)

	existing, err := s.users.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if existing != nil {
		if strings.TrimSpace(existing.Code) != "" {
			return &GetOrCreateResult{User: existing}, nil
		}

		code, err := domain.NewUserCode()
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}
		repaired, err := s.users.SetCode(ctx, userID, code)
		if err != nil {
			return nil, fmt.Errorf("backfill code: %w", err)
		}

		s.log.InfoContext(ctx, "user code backfilled",
			slog.String("user_id", userID.String()),
		)
		return &GetOrCreateResult{User: repaired}, nil
	}

	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	code, err := domain.NewUserCode()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		ID:   userID,
		Name: name,
		Code: code,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", userID.String()),
		slog.String("name", name),
	)

	return &GetOrCreateResult{User: created, Created: true}, nil
}
