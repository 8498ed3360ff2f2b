package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// ListUsers returns every user with the admin flag merged in.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Promote makes the target user an admin with role "admin". The target
// must exist and must not already hold an admin record.
func (s *Service) Promote(ctx context.Context, targetID uuid.UUID) (*domain.AdminRecord, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	existing, err := s.admins.GetAdmin(ctx, targetID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if existing != nil {
		return nil, domain.NewDuplicateError("admin", targetID.String())
	}

	created, err := s.admins.CreateAdmin(ctx, &domain.AdminRecord{
		UserID:     targetID,
		Role:       domain.AdminRoleAdmin,
		AssignedBy: callerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin",
		slog.String("caller_id", callerID.String()),
		slog.String("user_id", targetID.String()),
	)

	return created, nil
}

// UpdateRole changes an existing admin's role. The target must already be
// an admin; a user without an admin record is reported as absent.
func (s *Service) UpdateRole(ctx context.Context, targetID uuid.UUID, role domain.AdminRole) (*domain.AdminRecord, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be 'admin' or 'super-admin'")
	}

	if _, err := s.admins.GetAdmin(ctx, targetID); err != nil {
		return nil, err
	}

	updated, err := s.admins.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.log.InfoContext(ctx, "admin role updated",
		slog.String("caller_id", callerID.String()),
		slog.String("user_id", targetID.String()),
		slog.String("role", role.String()),
	)

	return updated, nil
}

// Demote removes the target's admin record. The user itself is untouched.
func (s *Service) Demote(ctx context.Context, targetID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if targetID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}

	if _, err := s.admins.GetAdmin(ctx, targetID); err != nil {
		return err
	}

	if err := s.admins.DeleteAdmin(ctx, targetID); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}

	s.log.InfoContext(ctx, "admin demoted",
		slog.String("caller_id", callerID.String()),
		slog.String("user_id", targetID.String()),
	)

	return nil
}

// ListAdmins returns all admin records.
func (s *Service) ListAdmins(ctx context.Context) ([]domain.AdminRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}
