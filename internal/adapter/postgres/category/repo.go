// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const categoryColumns = `id, user_id, name, name_search, color, created_at, updated_at`

const (
	createQuery = `INSERT INTO categories (id, user_id, name, name_search, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns

	getByIDQuery = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	findByNameSearchQuery = `SELECT ` + categoryColumns + ` FROM categories
		WHERE user_id = $1 AND name_search = $2`

	listByUserQuery = `SELECT ` + categoryColumns + ` FROM categories
		WHERE user_id = $1 ORDER BY name_search`

	updateQuery = `UPDATE categories SET name = $2, name_search = $3, color = $4
		WHERE id = $1
		RETURNING ` + categoryColumns

	deleteQuery = `DELETE FROM categories WHERE id = $1`

	countByUserQuery = `SELECT count(*) FROM categories WHERE user_id = $1`

	searchPrefixQuery = `SELECT ` + categoryColumns + ` FROM categories
		WHERE user_id = $1 AND name_search >= $2 AND name_search < $3
		ORDER BY name_search
		LIMIT $4`
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new category and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCategory(q.QueryRow(ctx, createQuery,
		c.ID, c.UserID, c.Name, c.NameSearch, c.Color))
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID.String())
	}
	return created, nil
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id.String())
	}
	return c, nil
}

// FindByNameSearch returns the user's category whose search key equals
// nameSearch, or ErrNotFound. At most one such category can exist per user.
func (r *Repo) FindByNameSearch(ctx context.Context, userID uuid.UUID, nameSearch string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, findByNameSearchQuery, userID, nameSearch))
	if err != nil {
		return nil, postgres.MapError(err, "category", nameSearch)
	}
	return c, nil
}

// ListByUser returns the user's categories ordered by search key.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByUserQuery, userID)
	if err != nil {
		return nil, postgres.MapError(err, "category", "")
	}
	defer rows.Close()

	return scanCategories(rows)
}

// Update rewrites name, search key, and color in one statement.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, nameSearch, color string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, updateQuery, id, name, nameSearch, color))
	if err != nil {
		return nil, postgres.MapError(err, "category", id.String())
	}
	return c, nil
}

// Delete removes the category; its word links cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteQuery, id)
	if err != nil {
		return postgres.MapError(err, "category", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByUser returns how many categories the user has.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserQuery, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "category", "")
	}
	return count, nil
}

// SearchPrefix returns the user's categories whose search key starts with
// prefix, ordered by search key.
func (r *Repo) SearchPrefix(ctx context.Context, userID uuid.UUID, prefix string, limit int) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	upper := prefix + domain.SearchSentinel
	rows, err := q.Query(ctx, searchPrefixQuery, userID, prefix, upper, limit)
	if err != nil {
		return nil, postgres.MapError(err, "category", prefix)
	}
	defer rows.Close()

	return scanCategories(rows)
}

func scanCategory(r pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := r.Scan(&c.ID, &c.UserID, &c.Name, &c.NameSearch, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}
