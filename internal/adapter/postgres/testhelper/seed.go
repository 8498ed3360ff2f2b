package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/infinitevocab/backend/internal/domain"
)

// RandomUserCode returns a fresh 8-character user code for non-conflicting test data.
func RandomUserCode() string {
	code, err := domain.NewUserCode()
	if err != nil {
		panic(err)
	}
	return code
}

// SeedUser creates a user with a random code and zero score.
// Returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{
		ID:   uuid.New(),
		Name: "Test User " + uuid.New().String()[:8],
		Code: RandomUserCode(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, name, code, total_score)
		 VALUES ($1, $2, $3, 0)
		 RETURNING total_score, created_at, updated_at`,
		user.ID, user.Name, user.Code,
	).Scan(&user.TotalScore, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAdmin creates a user and promotes it with the given role.
// Returns the user with IsAdmin set.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, role domain.AdminRole) domain.User {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool)

	_, err := pool.Exec(ctx,
		`INSERT INTO admins (user_id, role, assigned_by) VALUES ($1, $2, $3)`,
		user.ID, string(role), user.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin insert admin: %v", err)
	}

	user.IsAdmin = true
	return user
}

// SeedWord creates a word for the user, with one initial description and one
// initial example. Returns the filled domain.Word.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, text string) domain.Word {
	t.Helper()
	ctx := context.Background()

	word := domain.Word{
		ID:         uuid.New(),
		UserID:     userID,
		Text:       text,
		TextSearch: domain.SearchKey(text),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO words (id, user_id, text, text_search, stars)
		 VALUES ($1, $2, $3, $4, 0)
		 RETURNING stars, created_at, updated_at`,
		word.ID, word.UserID, word.Text, word.TextSearch,
	).Scan(&word.Stars, &word.CreatedAt, &word.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	desc := domain.Description{
		ID:        uuid.New(),
		WordID:    word.ID,
		UserID:    userID,
		Text:      "Definition of " + text,
		IsInitial: true,
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO word_descriptions (id, word_id, user_id, text, is_initial)
		 VALUES ($1, $2, $3, $4, true)`,
		desc.ID, desc.WordID, desc.UserID, desc.Text,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert description: %v", err)
	}

	example := domain.Example{
		ID:        uuid.New(),
		WordID:    word.ID,
		UserID:    userID,
		Text:      "Example with " + text,
		IsInitial: true,
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO word_examples (id, word_id, user_id, text, is_initial)
		 VALUES ($1, $2, $3, $4, true)`,
		example.ID, example.WordID, example.UserID, example.Text,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert example: %v", err)
	}

	word.Descriptions = []domain.Description{desc}
	word.Examples = []domain.Example{example}
	return word
}

// SeedCategory creates a category for the user with the default color.
// Returns the filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Category {
	t.Helper()
	ctx := context.Background()

	category := domain.Category{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		NameSearch: domain.SearchKey(name),
		Color:      domain.DefaultCategoryColor,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (id, user_id, name, name_search, color)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		category.ID, category.UserID, category.Name, category.NameSearch, category.Color,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	return category
}

// SeedLink creates a word-category link with the deterministic composite ID.
// Returns the filled domain.WordCategoryLink.
func SeedLink(t *testing.T, pool *pgxpool.Pool, userID, wordID, categoryID uuid.UUID) domain.WordCategoryLink {
	t.Helper()
	ctx := context.Background()

	link := domain.WordCategoryLink{
		ID:         domain.WordCategoryLinkID(wordID, categoryID),
		WordID:     wordID,
		CategoryID: categoryID,
		UserID:     userID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO word_categories (id, word_id, category_id, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		link.ID, link.WordID, link.CategoryID, link.UserID,
	).Scan(&link.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLink insert link: %v", err)
	}

	return link
}
