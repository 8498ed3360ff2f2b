// Package word implements the Word repository using PostgreSQL, including
// the description and example sub-entities.
package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const wordColumns = `id, user_id, text, text_search, stars, created_at, updated_at`

const (
	createQuery = `INSERT INTO words (id, user_id, text, text_search, stars)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING ` + wordColumns

	getByIDQuery = `SELECT ` + wordColumns + ` FROM words WHERE id = $1`

	getForUpdateQuery = `SELECT ` + wordColumns + ` FROM words WHERE id = $1 FOR UPDATE`

	findByTextSearchQuery = `SELECT ` + wordColumns + ` FROM words
		WHERE user_id = $1 AND text_search = $2`

	updateTextQuery = `UPDATE words SET text = $2, text_search = $3 WHERE id = $1
		RETURNING ` + wordColumns

	setStarsQuery = `UPDATE words SET stars = $2 WHERE id = $1`

	deleteQuery = `DELETE FROM words WHERE id = $1`

	countByUserQuery = `SELECT count(*) FROM words WHERE user_id = $1`

	searchPrefixQuery = `SELECT ` + wordColumns + ` FROM words
		WHERE user_id = $1 AND text_search >= $2 AND text_search < $3
		ORDER BY text_search
		LIMIT $4`
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new word with zero stars and returns the persisted row.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanWord(q.QueryRow(ctx, createQuery, w.ID, w.UserID, w.Text, w.TextSearch))
	if err != nil {
		return nil, postgres.MapError(err, "word", w.ID.String())
	}
	return created, nil
}

// GetByID returns a word by primary key, without sub-entities.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}
	return w, nil
}

// GetDetailed returns a word with its descriptions and examples loaded,
// each ordered oldest first.
func (r *Repo) GetDetailed(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	w, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	w.Descriptions, err = r.ListDescriptions(ctx, id)
	if err != nil {
		return nil, err
	}

	w.Examples, err = r.ListExamples(ctx, id)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// GetForUpdate locks the word row for the duration of the surrounding
// transaction and returns it.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, getForUpdateQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}
	return w, nil
}

// FindByTextSearch returns the user's word whose search key equals
// textSearch, or ErrNotFound. At most one such word can exist per user.
func (r *Repo) FindByTextSearch(ctx context.Context, userID uuid.UUID, textSearch string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, findByTextSearchQuery, userID, textSearch))
	if err != nil {
		return nil, postgres.MapError(err, "word", textSearch)
	}
	return w, nil
}

// UpdateText rewrites the word's text and search key in one statement.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text, textSearch string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, updateTextQuery, id, text, textSearch))
	if err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}
	return w, nil
}

// SetStars overwrites the word's star count.
func (r *Repo) SetStars(ctx context.Context, id uuid.UUID, stars int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setStarsQuery, id, stars)
	if err != nil {
		return postgres.MapError(err, "word", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the word; descriptions and examples cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteQuery, id)
	if err != nil {
		return postgres.MapError(err, "word", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountByUser returns how many words the user has.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserQuery, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "word", "")
	}
	return count, nil
}

// SearchPrefix returns the user's words whose search key starts with prefix,
// ordered by search key. The half-open range [prefix, prefix+sentinel)
// matches exactly the keys with that prefix.
func (r *Repo) SearchPrefix(ctx context.Context, userID uuid.UUID, prefix string, limit int) ([]domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	upper := prefix + domain.SearchSentinel
	rows, err := q.Query(ctx, searchPrefixQuery, userID, prefix, upper, limit)
	if err != nil {
		return nil, postgres.MapError(err, "word", prefix)
	}
	defer rows.Close()

	return scanWords(rows)
}

func scanWord(r pgx.Row) (*domain.Word, error) {
	var w domain.Word
	err := r.Scan(&w.ID, &w.UserID, &w.Text, &w.TextSearch, &w.Stars, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}
