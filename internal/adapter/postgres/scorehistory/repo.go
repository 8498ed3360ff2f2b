// Package scorehistory implements the append-only score adjustment log
// using PostgreSQL. Entries are never updated or deleted.
package scorehistory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const entryColumns = `id, user_id, admin_id, score_delta, new_total_score, reason, created_at`

const (
	appendQuery = `INSERT INTO score_history (id, user_id, admin_id, score_delta, new_total_score, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + entryColumns

	listByStudentQuery = `SELECT ` + entryColumns + ` FROM score_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`
)

// Repo provides score history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new score history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts one adjustment entry and returns the persisted row.
func (r *Repo) Append(ctx context.Context, e *domain.ScoreHistoryEntry) (*domain.ScoreHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanEntry(q.QueryRow(ctx, appendQuery,
		e.ID, e.StudentID, e.AdminID, e.ScoreDelta, e.NewTotalScore, e.Reason))
	if err != nil {
		return nil, postgres.MapError(err, "score_history", e.ID.String())
	}
	return created, nil
}

// ListByStudent returns up to limit of the student's adjustment entries,
// newest first.
func (r *Repo) ListByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]domain.ScoreHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByStudentQuery, studentID, limit)
	if err != nil {
		return nil, postgres.MapError(err, "score_history", studentID.String())
	}
	defer rows.Close()

	var entries []domain.ScoreHistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score history entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score history: %w", err)
	}
	return entries, nil
}

func scanEntry(r pgx.Row) (*domain.ScoreHistoryEntry, error) {
	var e domain.ScoreHistoryEntry
	err := r.Scan(&e.ID, &e.StudentID, &e.AdminID, &e.ScoreDelta, &e.NewTotalScore, &e.Reason, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
