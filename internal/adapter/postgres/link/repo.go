// Package link implements the word-category link repository using PostgreSQL.
// Link rows are keyed by the deterministic composite id "{wordID}_{categoryID}".
package link

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const linkColumns = `id, word_id, category_id, user_id, created_at`

const (
	createQuery = `INSERT INTO word_categories (id, word_id, category_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + linkColumns

	getByIDQuery = `SELECT ` + linkColumns + ` FROM word_categories WHERE id = $1`

	deleteQuery = `DELETE FROM word_categories WHERE id = $1`

	listByWordQuery = `SELECT ` + linkColumns + ` FROM word_categories
		WHERE word_id = $1 ORDER BY created_at, id`

	listByCategoryQuery = `SELECT ` + linkColumns + ` FROM word_categories
		WHERE category_id = $1 ORDER BY created_at, id`
)

// Repo provides word-category link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a link row under its composite id.
func (r *Repo) Create(ctx context.Context, l *domain.WordCategoryLink) (*domain.WordCategoryLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLink(q.QueryRow(ctx, createQuery, l.ID, l.WordID, l.CategoryID, l.UserID))
	if err != nil {
		return nil, postgres.MapError(err, "word_category_link", l.ID)
	}
	return created, nil
}

// GetByID returns a link by composite id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.WordCategoryLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLink(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "word_category_link", id)
	}
	return l, nil
}

// Delete removes a link by composite id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteQuery, id)
	if err != nil {
		return postgres.MapError(err, "word_category_link", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_category_link %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByWord returns the word's links, oldest first.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.WordCategoryLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByWordQuery, wordID)
	if err != nil {
		return nil, postgres.MapError(err, "word_category_link", "")
	}
	defer rows.Close()

	return scanLinks(rows)
}

// ListByCategory returns the category's links, oldest first.
func (r *Repo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.WordCategoryLink, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByCategoryQuery, categoryID)
	if err != nil {
		return nil, postgres.MapError(err, "word_category_link", "")
	}
	defer rows.Close()

	return scanLinks(rows)
}

func scanLink(r pgx.Row) (*domain.WordCategoryLink, error) {
	var l domain.WordCategoryLink
	err := r.Scan(&l.ID, &l.WordID, &l.CategoryID, &l.UserID, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLinks(rows pgx.Rows) ([]domain.WordCategoryLink, error) {
	var links []domain.WordCategoryLink
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate links: %w", err)
	}
	return links, nil
}
