package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const (
	descColumns    = `id, word_id, user_id, text, is_initial, created_at, updated_at`
	exampleColumns = descColumns
)

const (
	addDescriptionQuery = `INSERT INTO word_descriptions (id, word_id, user_id, text, is_initial)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + descColumns

	getDescriptionQuery = `SELECT ` + descColumns + ` FROM word_descriptions WHERE id = $1`

	listDescriptionsQuery = `SELECT ` + descColumns + ` FROM word_descriptions
		WHERE word_id = $1 ORDER BY created_at, id`

	countDescriptionsQuery = `SELECT count(*) FROM word_descriptions WHERE word_id = $1`

	updateDescriptionQuery = `UPDATE word_descriptions SET text = $2 WHERE id = $1
		RETURNING ` + descColumns

	deleteDescriptionQuery = `DELETE FROM word_descriptions WHERE id = $1`

	addExampleQuery = `INSERT INTO word_examples (id, word_id, user_id, text, is_initial)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + exampleColumns

	getExampleQuery = `SELECT ` + exampleColumns + ` FROM word_examples WHERE id = $1`

	listExamplesQuery = `SELECT ` + exampleColumns + ` FROM word_examples
		WHERE word_id = $1 ORDER BY created_at, id`

	countExamplesQuery = `SELECT count(*) FROM word_examples WHERE word_id = $1`

	updateExampleQuery = `UPDATE word_examples SET text = $2 WHERE id = $1
		RETURNING ` + exampleColumns

	deleteExampleQuery = `DELETE FROM word_examples WHERE id = $1`
)

// AddDescription inserts a description attached to d.WordID.
func (r *Repo) AddDescription(ctx context.Context, d *domain.Description) (*domain.Description, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanDescription(q.QueryRow(ctx, addDescriptionQuery,
		d.ID, d.WordID, d.UserID, d.Text, d.IsInitial))
	if err != nil {
		return nil, postgres.MapError(err, "description", d.ID.String())
	}
	return created, nil
}

// GetDescription returns a description by primary key.
func (r *Repo) GetDescription(ctx context.Context, id uuid.UUID) (*domain.Description, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDescription(q.QueryRow(ctx, getDescriptionQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "description", id.String())
	}
	return d, nil
}

// ListDescriptions returns the word's descriptions, oldest first.
func (r *Repo) ListDescriptions(ctx context.Context, wordID uuid.UUID) ([]domain.Description, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDescriptionsQuery, wordID)
	if err != nil {
		return nil, postgres.MapError(err, "description", "")
	}
	defer rows.Close()

	var descriptions []domain.Description
	for rows.Next() {
		d, err := scanDescription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan description: %w", err)
		}
		descriptions = append(descriptions, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate descriptions: %w", err)
	}
	return descriptions, nil
}

// CountDescriptions returns the number of descriptions the word has.
func (r *Repo) CountDescriptions(ctx context.Context, wordID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countDescriptionsQuery, wordID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "description", "")
	}
	return count, nil
}

// UpdateDescription rewrites the description text.
func (r *Repo) UpdateDescription(ctx context.Context, id uuid.UUID, text string) (*domain.Description, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDescription(q.QueryRow(ctx, updateDescriptionQuery, id, text))
	if err != nil {
		return nil, postgres.MapError(err, "description", id.String())
	}
	return d, nil
}

// DeleteDescription removes a description.
func (r *Repo) DeleteDescription(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteDescriptionQuery, id)
	if err != nil {
		return postgres.MapError(err, "description", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("description %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddExample inserts an example attached to e.WordID.
func (r *Repo) AddExample(ctx context.Context, e *domain.Example) (*domain.Example, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanExample(q.QueryRow(ctx, addExampleQuery,
		e.ID, e.WordID, e.UserID, e.Text, e.IsInitial))
	if err != nil {
		return nil, postgres.MapError(err, "example", e.ID.String())
	}
	return created, nil
}

// GetExample returns an example by primary key.
func (r *Repo) GetExample(ctx context.Context, id uuid.UUID) (*domain.Example, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExample(q.QueryRow(ctx, getExampleQuery, id))
	if err != nil {
		return nil, postgres.MapError(err, "example", id.String())
	}
	return e, nil
}

// ListExamples returns the word's examples, oldest first.
func (r *Repo) ListExamples(ctx context.Context, wordID uuid.UUID) ([]domain.Example, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listExamplesQuery, wordID)
	if err != nil {
		return nil, postgres.MapError(err, "example", "")
	}
	defer rows.Close()

	var examples []domain.Example
	for rows.Next() {
		e, err := scanExample(rows)
		if err != nil {
			return nil, fmt.Errorf("scan example: %w", err)
		}
		examples = append(examples, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate examples: %w", err)
	}
	return examples, nil
}

// CountExamples returns the number of examples the word has.
func (r *Repo) CountExamples(ctx context.Context, wordID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countExamplesQuery, wordID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "example", "")
	}
	return count, nil
}

// UpdateExample rewrites the example text.
func (r *Repo) UpdateExample(ctx context.Context, id uuid.UUID, text string) (*domain.Example, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExample(q.QueryRow(ctx, updateExampleQuery, id, text))
	if err != nil {
		return nil, postgres.MapError(err, "example", id.String())
	}
	return e, nil
}

// DeleteExample removes an example.
func (r *Repo) DeleteExample(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExampleQuery, id)
	if err != nil {
		return postgres.MapError(err, "example", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("example %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanDescription(r pgx.Row) (*domain.Description, error) {
	var d domain.Description
	err := r.Scan(&d.ID, &d.WordID, &d.UserID, &d.Text, &d.IsInitial, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanExample(r pgx.Row) (*domain.Example, error) {
	var e domain.Example
	err := r.Scan(&e.ID, &e.WordID, &e.UserID, &e.Text, &e.IsInitial, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
