package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

const defaultHistoryLimit = 50

// AddScoreInput holds the parameters for a score adjustment.
type AddScoreInput struct {
	StudentID uuid.UUID
	Delta     int64
	Reason    string
}

// Validate checks all fields and collects all errors.
func (i AddScoreInput) Validate() error {
	var errs []domain.FieldError

	if i.StudentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "student_id", Message: "required"})
	}
	if i.Delta == 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must be non-zero"})
	}
	if len(i.Reason) > 500 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddScore adjusts a student's total score and records the adjustment. The
// student row is locked, the new total computed, the history entry appended
// with that total, and the user updated, all in one transaction, so the
// recorded totals always agree with the user's running score.
func (s *Service) AddScore(ctx context.Context, input AddScoreInput) (*domain.ScoreHistoryEntry, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var entry *domain.ScoreHistoryEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		student, err := s.users.GetForUpdate(txCtx, input.StudentID)
		if err != nil {
			return err
		}

		newTotal := student.TotalScore + input.Delta

		entry, err = s.scores.Append(txCtx, &domain.ScoreHistoryEntry{
			ID:            uuid.New(),
			StudentID:     input.StudentID,
			AdminID:       adminID,
			ScoreDelta:    input.Delta,
			NewTotalScore: newTotal,
			Reason:        strings.TrimSpace(input.Reason),
		})
		if err != nil {
			return fmt.Errorf("append score history: %w", err)
		}

		if err := s.users.SetTotalScore(txCtx, input.StudentID, newTotal); err != nil {
			return fmt.Errorf("set total score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "score adjusted",
		slog.String("admin_id", adminID.String()),
		slog.String("student_id", input.StudentID.String()),
		slog.Int64("delta", input.Delta),
		slog.Int64("new_total", entry.NewTotalScore),
	)

	return entry, nil
}

// ScoreHistory returns a student's score adjustments, newest first.
func (s *Service) ScoreHistory(ctx context.Context, studentID uuid.UUID, limit int) ([]domain.ScoreHistoryEntry, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if studentID == uuid.Nil {
		return nil, domain.NewValidationError("student_id", "required")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	if _, err := s.users.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	entries, err := s.scores.ListByStudent(ctx, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list score history: %w", err)
	}
	return entries, nil
}
