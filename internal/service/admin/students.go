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

// AssignStudent assigns a student to the calling admin. A student belongs
// to at most one admin system-wide. The checks run in a fixed order: the
// student must exist, must not be an admin, and must not already be
// assigned; the duplicate message distinguishes the caller's own student
// from one held by another admin. The unique index on student_id backstops
// the race between the check and the insert.
func (s *Service) AssignStudent(ctx context.Context, studentID uuid.UUID) (*domain.AdminStudentLink, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if studentID == uuid.Nil {
		return nil, domain.NewValidationError("student_id", "required")
	}

	if _, err := s.users.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	adminRec, err := s.admins.GetAdmin(ctx, studentID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if adminRec != nil {
		return nil, &domain.DuplicateError{
			Entity:        "admin_student_link",
			ConflictingID: studentID.String(),
			Message:       "user is an admin and cannot be assigned as a student",
		}
	}

	existing, err := s.admins.GetLinkByStudent(ctx, studentID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	if existing != nil {
		msg := "student is already assigned to another admin"
		if existing.AdminID == adminID {
			msg = "student is already assigned to you"
		}
		return nil, &domain.DuplicateError{
			Entity:        "admin_student_link",
			ConflictingID: existing.ID,
			Message:       msg,
		}
	}

	created, err := s.admins.CreateStudentLink(ctx, &domain.AdminStudentLink{
		ID:        domain.AdminStudentLinkID(adminID, studentID),
		AdminID:   adminID,
		StudentID: studentID,
	})
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	s.log.InfoContext(ctx, "student assigned",
		slog.String("admin_id", adminID.String()),
		slog.String("student_id", studentID.String()),
	)

	return created, nil
}

// RemoveStudent unassigns a student from the calling admin. A student
// assigned to a different admin, or not assigned at all, is reported as
// absent. A removed student can be assigned again, by anyone.
func (s *Service) RemoveStudent(ctx context.Context, studentID uuid.UUID) error {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if studentID == uuid.Nil {
		return domain.NewValidationError("student_id", "required")
	}

	link, err := s.admins.GetLinkByStudent(ctx, studentID)
	if err != nil {
		return err
	}
	if link.AdminID != adminID {
		return fmt.Errorf("assignment for student %s: %w", studentID, domain.ErrNotFound)
	}

	if err := s.admins.DeleteStudentLink(ctx, link.ID); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	s.log.InfoContext(ctx, "student removed",
		slog.String("admin_id", adminID.String()),
		slog.String("student_id", studentID.String()),
	)

	return nil
}

// ListStudents returns the students assigned to the calling admin.
func (s *Service) ListStudents(ctx context.Context) ([]domain.User, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	students, err := s.admins.ListStudents(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}
