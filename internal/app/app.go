package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	adminrepo "github.com/infinitevocab/backend/internal/adapter/postgres/admin"
	categoryrepo "github.com/infinitevocab/backend/internal/adapter/postgres/category"
	linkrepo "github.com/infinitevocab/backend/internal/adapter/postgres/link"
	scorerepo "github.com/infinitevocab/backend/internal/adapter/postgres/scorehistory"
	userrepo "github.com/infinitevocab/backend/internal/adapter/postgres/user"
	wordrepo "github.com/infinitevocab/backend/internal/adapter/postgres/word"
	"github.com/infinitevocab/backend/internal/auth"
	"github.com/infinitevocab/backend/internal/config"
	adminsvc "github.com/infinitevocab/backend/internal/service/admin"
	categorysvc "github.com/infinitevocab/backend/internal/service/category"
	linksvc "github.com/infinitevocab/backend/internal/service/link"
	searchsvc "github.com/infinitevocab/backend/internal/service/search"
	usersvc "github.com/infinitevocab/backend/internal/service/user"
	wordsvc "github.com/infinitevocab/backend/internal/service/word"
	"github.com/infinitevocab/backend/internal/transport/rest"
	"github.com/infinitevocab/backend/migrations"
)

// Run is the application entry point: load configuration, build the
// dependency graph, start the HTTP server, and shut down gracefully on
// SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := applyMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	words := wordrepo.New(pool)
	categories := categoryrepo.New(pool)
	links := linkrepo.New(pool)
	admins := adminrepo.New(pool)
	scores := scorerepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	userService := usersvc.NewService(logger, users, cfg.Vocab)
	wordService := wordsvc.NewService(logger, words, tx, cfg.Vocab)
	categoryService := categorysvc.NewService(logger, categories, cfg.Vocab)
	linkService := linksvc.NewService(logger, links, words, categories)
	adminService := adminsvc.NewService(logger, admins, users, scores, tx)
	searchService := searchsvc.NewService(logger, words, categories)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		Tokens:  jwtManager,
		Admins:  admins,
		DB:      pool,
		Version: BuildVersion(),
		CORS:    cfg.CORS,

		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,

		Users:      userService,
		Words:      wordService,
		Categories: categoryService,
		Links:      linkService,
		Admin:      adminService,
		Search:     searchService,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// applyMigrations runs goose migrations from the embedded FS.
// goose requires database/sql, so a short-lived stdlib connection is used.
func applyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
