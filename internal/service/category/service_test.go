package category

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitevocab/backend/internal/config"
	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/pkg/ctxutil"
)

// Manual mocks (moq-style with func fields)

type mockCategoryRepo struct {
	CreateFunc           func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindByNameSearchFunc func(ctx context.Context, userID uuid.UUID, nameSearch string) (*domain.Category, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, name, nameSearch, color string) (*domain.Category, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	CountByUserFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c, nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepo) FindByNameSearch(ctx context.Context, userID uuid.UUID, nameSearch string) (*domain.Category, error) {
	if m.FindByNameSearchFunc != nil {
		return m.FindByNameSearchFunc(ctx, userID, nameSearch)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCategoryRepo) Update(ctx context.Context, id uuid.UUID, name, nameSearch, color string) (*domain.Category, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, name, nameSearch, color)
	}
	return &domain.Category{ID: id, Name: name, NameSearch: nameSearch, Color: color}, nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

func defaultCfg() config.VocabConfig {
	return config.VocabConfig{
		MaxWordsPerUser:      10000,
		MaxCategoriesPerUser: 100,
		LeaderboardMaxLimit:  100,
	}
}

func newTestService(cfg config.VocabConfig) (*Service, *mockCategoryRepo) {
	repo := &mockCategoryRepo{}
	return NewService(slog.Default(), repo, cfg), repo
}

func authCtx() (context.Context, uuid.UUID) {
	userID := uuid.New()
	return ctxutil.WithUserID(context.Background(), userID), userID
}

func TestService_CreateCategory_Defaults(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())
	ctx, userID := authCtx()

	created, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "  Verbs "})
	require.NoError(t, err)
	assert.Equal(t, "Verbs", created.Name)
	assert.Equal(t, "verbs", created.NameSearch)
	assert.Equal(t, domain.DefaultCategoryColor, created.Color)
	assert.Equal(t, userID, created.UserID)
}

func TestService_CreateCategory_Color(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())
	ctx, _ := authCtx()

	created, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "Nouns", Color: "#1A2B3C"})
	require.NoError(t, err)
	assert.Equal(t, "#1A2B3C", created.Color)

	// Only length and the leading '#' are checked, not hex digits.
	created, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Lax", Color: "#zzzzzz"})
	require.NoError(t, err)
	assert.Equal(t, "#zzzzzz", created.Color)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Bad", Color: "1A2B3C7"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateCategory(ctx, CreateCategoryInput{Name: "Short", Color: "#FFF"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_CreateCategory_Duplicate(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, userID := authCtx()

	existingID := uuid.New()
	repo.FindByNameSearchFunc = func(_ context.Context, uid uuid.UUID, key string) (*domain.Category, error) {
		assert.Equal(t, userID, uid)
		assert.Equal(t, "verbs", key)
		return &domain.Category{ID: existingID, UserID: uid, NameSearch: key}, nil
	}

	_, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "VERBS"})
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, existingID.String(), dup.ConflictingID)
}

func TestService_CreateCategory_LimitReached(t *testing.T) {
	t.Parallel()
	cfg := defaultCfg()
	cfg.MaxCategoriesPerUser = 2
	svc, repo := newTestService(cfg)
	ctx, _ := authCtx()

	repo.CountByUserFunc = func(context.Context, uuid.UUID) (int, error) { return 2, nil }

	_, err := svc.CreateCategory(ctx, CreateCategoryInput{Name: "One more"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_CreateCategory_NoAuth(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Verbs"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_GetCategory_ForeignMaskedAsNotFound(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, _ := authCtx()

	repo.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Category, error) {
		return &domain.Category{ID: id, UserID: uuid.New()}, nil
	}

	_, err := svc.GetCategory(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_UpdateCategory_KeepsColorWhenEmpty(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, userID := authCtx()

	categoryID := uuid.New()
	repo.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.Category, error) {
		return &domain.Category{ID: categoryID, UserID: userID, Name: "Old", NameSearch: "old", Color: "#123456"}, nil
	}

	var gotColor, gotSearch string
	repo.UpdateFunc = func(_ context.Context, id uuid.UUID, name, nameSearch, color string) (*domain.Category, error) {
		gotColor, gotSearch = color, nameSearch
		return &domain.Category{ID: id, UserID: userID, Name: name, NameSearch: nameSearch, Color: color}, nil
	}

	_, err := svc.UpdateCategory(ctx, UpdateCategoryInput{CategoryID: categoryID, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "#123456", gotColor)
	assert.Equal(t, "renamed", gotSearch)
}

func TestService_UpdateCategory_DuplicateTarget(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, userID := authCtx()

	categoryID := uuid.New()
	otherID := uuid.New()
	repo.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.Category, error) {
		return &domain.Category{ID: categoryID, UserID: userID, Name: "Old", NameSearch: "old"}, nil
	}
	repo.FindByNameSearchFunc = func(_ context.Context, _ uuid.UUID, key string) (*domain.Category, error) {
		return &domain.Category{ID: otherID, UserID: userID, NameSearch: key}, nil
	}

	_, err := svc.UpdateCategory(ctx, UpdateCategoryInput{CategoryID: categoryID, Name: "Taken"})
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, otherID.String(), dup.ConflictingID)
}

func TestService_UpdateCategory_CaseOnlyRenameSkipsDuplicateCheck(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, userID := authCtx()

	categoryID := uuid.New()
	repo.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.Category, error) {
		return &domain.Category{ID: categoryID, UserID: userID, Name: "verbs", NameSearch: "verbs", Color: "#FFFFFF"}, nil
	}
	repo.FindByNameSearchFunc = func(context.Context, uuid.UUID, string) (*domain.Category, error) {
		t.Fatal("duplicate check should be skipped when the search key is unchanged")
		return nil, nil
	}

	_, err := svc.UpdateCategory(ctx, UpdateCategoryInput{CategoryID: categoryID, Name: "Verbs"})
	require.NoError(t, err)
}

func TestService_DeleteCategory_Foreign(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, _ := authCtx()

	repo.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Category, error) {
		return &domain.Category{ID: id, UserID: uuid.New()}, nil
	}
	repo.DeleteFunc = func(context.Context, uuid.UUID) error {
		t.Fatal("delete must not be reached for a foreign category")
		return nil
	}

	err := svc.DeleteCategory(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
