// Package rest wires the HTTP transport: handlers, middleware chain and
// route table.
package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/config"
	"github.com/infinitevocab/backend/internal/domain"
	"github.com/infinitevocab/backend/internal/transport/middleware"
)

// TokenValidator validates bearer tokens and resolves the user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// AdminDirectory resolves admin records for the admin-gate middleware.
type AdminDirectory interface {
	GetAdmin(ctx context.Context, userID uuid.UUID) (*domain.AdminRecord, error)
}

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Logger  *slog.Logger
	Tokens  TokenValidator
	Admins  AdminDirectory
	DB      dbPinger
	Version string
	CORS    config.CORSConfig

	RateLimitPerMinute int

	Users      userService
	Words      wordService
	Categories categoryService
	Links      linkService
	Admin      adminService
	Search     searchService
}

// NewRouter builds the full HTTP handler: health probes outside the
// middleware chain, everything else behind request id, recovery, logging,
// CORS, authentication and the admin gate.
func NewRouter(deps RouterDeps) http.Handler {
	health := NewHealthHandler(deps.DB, deps.Version)
	words := NewWordHandler(deps.Words, deps.Logger)
	categories := NewCategoryHandler(deps.Categories, deps.Logger)
	links := NewLinkHandler(deps.Links, deps.Logger)
	users := NewUserHandler(deps.Users, deps.Logger)
	admins := NewAdminHandler(deps.Admin, deps.Logger)
	searches := NewSearchHandler(deps.Search, deps.Logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	api := http.NewServeMux()

	api.HandleFunc("POST /words", words.Create)
	api.HandleFunc("GET /words", words.List)
	api.HandleFunc("GET /words/duplicate", words.Duplicate)
	api.HandleFunc("GET /words/{id}", words.Get)
	api.HandleFunc("PATCH /words/{id}", words.Update)
	api.HandleFunc("DELETE /words/{id}", words.Delete)
	api.HandleFunc("POST /words/{id}/star", words.Star)
	api.HandleFunc("POST /words/{id}/descriptions", words.AddDescription)
	api.HandleFunc("PATCH /descriptions/{id}", words.UpdateDescription)
	api.HandleFunc("DELETE /descriptions/{id}", words.DeleteDescription)
	api.HandleFunc("POST /words/{id}/examples", words.AddExample)
	api.HandleFunc("PATCH /examples/{id}", words.UpdateExample)
	api.HandleFunc("DELETE /examples/{id}", words.DeleteExample)

	api.HandleFunc("POST /categories", categories.Create)
	api.HandleFunc("GET /categories", categories.List)
	api.HandleFunc("GET /categories/{id}", categories.Get)
	api.HandleFunc("PATCH /categories/{id}", categories.Update)
	api.HandleFunc("DELETE /categories/{id}", categories.Delete)

	api.HandleFunc("POST /words/{wordId}/categories/{categoryId}", links.Link)
	api.HandleFunc("DELETE /words/{wordId}/categories/{categoryId}", links.Unlink)
	api.HandleFunc("GET /categories/{id}/words", links.CategoryWords)
	api.HandleFunc("GET /words/{id}/categories", links.WordCategories)

	api.HandleFunc("GET /search", searches.Search)

	api.HandleFunc("POST /users/me", users.GetOrCreate)
	api.HandleFunc("GET /users/me", users.Me)
	api.HandleFunc("PATCH /users/me", users.UpdateMe)
	api.HandleFunc("GET /users/by-code/{code}", users.ByCode)
	api.HandleFunc("GET /leaderboard", users.Leaderboard)

	api.Handle("GET /admin/users", middleware.RequireAdmin(http.HandlerFunc(admins.ListUsers)))
	api.Handle("GET /admin/students", middleware.RequireAdmin(http.HandlerFunc(admins.ListStudents)))
	api.Handle("POST /admin/students/{studentId}", middleware.RequireAdmin(http.HandlerFunc(admins.AssignStudent)))
	api.Handle("DELETE /admin/students/{studentId}", middleware.RequireAdmin(http.HandlerFunc(admins.RemoveStudent)))
	api.Handle("POST /admin/students/{studentId}/score", middleware.RequireAdmin(http.HandlerFunc(admins.AddScore)))
	api.Handle("GET /admin/students/{studentId}/score-history", middleware.RequireAdmin(http.HandlerFunc(admins.ScoreHistory)))

	api.Handle("GET /admin/admins", middleware.RequireSuperAdmin(http.HandlerFunc(admins.ListAdmins)))
	api.Handle("POST /admin/admins/{userId}", middleware.RequireSuperAdmin(http.HandlerFunc(admins.Promote)))
	api.Handle("PATCH /admin/admins/{userId}", middleware.RequireSuperAdmin(http.HandlerFunc(admins.UpdateRole)))
	api.Handle("DELETE /admin/admins/{userId}", middleware.RequireSuperAdmin(http.HandlerFunc(admins.Demote)))

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	}
	if deps.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiter(time.Minute)
		mws = append(mws, rl.Limit(deps.RateLimitPerMinute))
	}
	mws = append(mws,
		middleware.Auth(deps.Tokens),
		middleware.Admin(deps.Admins),
	)

	mux.Handle("/", middleware.Chain(mws...)(api))

	return mux
}
