package word

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	"github.com/infinitevocab/backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByText      = "text"
	sortByStars     = "stars"
	sortByCreatedAt = "created_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f domain.WordFilter) domain.WordFilter {
	switch f.SortBy {
	case sortByText, sortByStars, sortByCreatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}

// sortColumn returns the SQL column name for a SortBy value.
func sortColumn(sortBy string) string {
	switch sortBy {
	case sortByText:
		return "text_search"
	case sortByStars:
		return "stars"
	default:
		return "created_at"
	}
}

// List returns the user's words matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	filter = normalizeFilter(filter)

	builder := squirrel.Select("id", "user_id", "text", "text_search", "stars", "created_at", "updated_at").
		From("words").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(fmt.Sprintf("%s %s", sortColumn(filter.SortBy), filter.SortOrder), "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(squirrel.Dollar)

	if filter.MinStars != nil {
		builder = builder.Where(squirrel.GtOrEq{"stars": *filter.MinStars})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build word list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", "")
	}
	defer rows.Close()

	return scanWords(rows)
}
