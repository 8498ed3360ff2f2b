// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

// userColumns selects the user row plus a derived is_admin flag.
const userColumns = `u.id, u.name, u.code, u.total_score,
	EXISTS (SELECT 1 FROM admins a WHERE a.user_id = u.id) AS is_admin,
	u.created_at, u.updated_at`

const (
	getByIDQuery = `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	getByCodeQuery = `SELECT ` + userColumns + ` FROM users u WHERE u.code = $1`

	createQuery = `INSERT INTO users (id, name, code, total_score)
		VALUES ($1, $2, $3, 0)
		RETURNING id, name, code, total_score, false, created_at, updated_at`

	updateNameQuery = `UPDATE users u SET name = $2 WHERE u.id = $1
		RETURNING ` + userColumns

	listQuery = `SELECT ` + userColumns + ` FROM users u ORDER BY u.created_at`

	leaderboardQuery = `SELECT ` + userColumns + ` FROM users u
		ORDER BY u.total_score DESC, u.created_at
		LIMIT $1`

	getForUpdateQuery = `SELECT id, name, code, total_score, false, created_at, updated_at
		FROM users WHERE id = $1 FOR UPDATE`

	setTotalScoreQuery = `UPDATE users SET total_score = $2 WHERE id = $1`

	setCodeQuery = `UPDATE users u SET code = $2 WHERE u.id = $1
		RETURNING ` + userColumns
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByCode returns a user by share code.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByCodeQuery, code))
	if err != nil {
		return nil, postgres.MapError(err, "user", code)
	}
	return u, nil
}

// Create inserts a new user with zero score and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, createQuery, u.ID, u.Name, u.Code))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID.String())
	}
	return created, nil
}

// UpdateName changes the user's display name.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateNameQuery, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// List returns all users ordered by creation time.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listQuery)
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Leaderboard returns up to limit users ordered by total score descending.
// Ties are broken by creation time, oldest first.
func (r *Repo) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, leaderboardQuery, limit)
	if err != nil {
		return nil, postgres.MapError(err, "user", "")
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetForUpdate locks the user row for the duration of the surrounding
// transaction and returns it. The IsAdmin flag is not resolved here; score
// adjustments do not need it.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getForUpdateQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// SetTotalScore overwrites the user's total score.
func (r *Repo) SetTotalScore(ctx context.Context, id uuid.UUID, total int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setTotalScoreQuery, id, total)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// SetCode assigns a share code to a user that is missing one. Used by the
// backfill path for accounts created before codes existed.
func (r *Repo) SetCode(ctx context.Context, id uuid.UUID, code string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, setCodeQuery, id, code))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

func scanUser(r pgx.Row) (*domain.User, error) {
	var u domain.User
	err := r.Scan(&u.ID, &u.Name, &u.Code, &u.TotalScore, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
