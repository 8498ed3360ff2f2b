package user

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

type mockUserRepo struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByCodeFunc   func(ctx context.Context, code string) (*domain.User, error)
	CreateFunc      func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateNameFunc  func(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	SetCodeFunc     func(ctx context.Context, id uuid.UUID, code string) (*domain.User, error)
	LeaderboardFunc func(ctx context.Context, limit int) ([]domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByCode(ctx context.Context, code string) (*domain.User, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u, nil
}

func (m *mockUserRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, id, name)
	}
	return &domain.User{ID: id, Name: name}, nil
}

func (m *mockUserRepo) SetCode(ctx context.Context, id uuid.UUID, code string) (*domain.User, error) {
	if m.SetCodeFunc != nil {
		return m.SetCodeFunc(ctx, id, code)
	}
	return &domain.User{ID: id, Code: code}, nil
}

func (m *mockUserRepo) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc(ctx, limit)
	}
	return nil, nil
}

func defaultCfg() config.VocabConfig {
	return config.VocabConfig{
		MaxWordsPerUser:      10000,
		MaxCategoriesPerUser: 100,
		LeaderboardMaxLimit:  100,
	}
}

func newTestService(cfg config.VocabConfig) (*Service, *mockUserRepo) {
	repo := &mockUserRepo{}
	return NewService(slog.Default(), repo, cfg), repo
}

func authCtx() (context.Context, uuid.UUID) {
	userID := uuid.New()
	return ctxutil.WithUserID(context.Background(), userID), userID
}

func TestService_GetOrCreate_CreatesWithCode(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())
	ctx, userID := authCtx()

	result, err := svc.GetOrCreate(ctx, "  Alice ")
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, userID, result.User.ID)
	assert.Equal(t, "Alice", result.User.Name)
	assert.True(t, domain.IsValidUserCode(result.User.Code), "code %q", result.User.Code)
}

func TestService_GetOrCreate_ExistingReturnedAsIs(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, userID := authCtx()

	repo.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: id, Name: "Bob", Code: "AB12CD34"}, nil
	}
	repo.SetCodeFunc = func(context.Context, uuid.UUID, string) (*domain.User, error) {
		t.Fatal("backfill must not run when a code is present")
		return nil, nil
	}

	result, err := svc.GetOrCreate(ctx, "ignored")
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, userID, result.User.ID)
	assert.Equal(t, "Bob", result.User.Name)
}

func TestService_GetOrCreate_BackfillsMissingCode(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, userID := authCtx()

	repo.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.User, error) {
		return &domain.User{ID: id, Name: "Old account", Code: "        "}, nil
	}

	var assigned string
	repo.SetCodeFunc = func(_ context.Context, id uuid.UUID, code string) (*domain.User, error) {
		assigned = code
		return &domain.User{ID: id, Name: "Old account", Code: code}, nil
	}

	result, err := svc.GetOrCreate(ctx, "")
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, userID, result.User.ID)
	assert.True(t, domain.IsValidUserCode(assigned), "code %q", assigned)
}

func TestService_GetOrCreate_NewUserNeedsName(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())
	ctx, _ := authCtx()

	_, err := svc.GetOrCreate(ctx, "   ")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_GetOrCreate_NoAuth(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())

	_, err := svc.GetOrCreate(context.Background(), "Alice")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(defaultCfg())
	ctx, _ := authCtx()

	updated, err := svc.UpdateProfile(ctx, " Carol ")
	require.NoError(t, err)
	assert.Equal(t, "Carol", updated.Name)

	_, err = svc.UpdateProfile(ctx, "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_FindByCode(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(defaultCfg())
	ctx, _ := authCtx()

	repo.GetByCodeFunc = func(_ context.Context, code string) (*domain.User, error) {
		assert.Equal(t, "AB12CD34", code)
		return &domain.User{ID: uuid.New(), Code: code}, nil
	}

	// Lowercase input is normalized before the lookup.
	_, err := svc.FindByCode(ctx, " ab12cd34 ")
	require.NoError(t, err)

	_, err = svc.FindByCode(ctx, "short")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Leaderboard_Clamping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: defaultLeaderboardLimit},
		{name: "negative", limit: -5, want: defaultLeaderboardLimit},
		{name: "in range", limit: 25, want: 25},
		{name: "above max", limit: 500, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newTestService(defaultCfg())
			ctx, _ := authCtx()

			var gotLimit int
			repo.LeaderboardFunc = func(_ context.Context, limit int) ([]domain.User, error) {
				gotLimit = limit
				return nil, nil
			}

			_, err := svc.Leaderboard(ctx, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotLimit)
		})
	}
}
