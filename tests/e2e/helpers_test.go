//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/infinitevocab/backend/internal/adapter/postgres"
	adminrepo "github.com/infinitevocab/backend/internal/adapter/postgres/admin"
	categoryrepo "github.com/infinitevocab/backend/internal/adapter/postgres/category"
	linkrepo "github.com/infinitevocab/backend/internal/adapter/postgres/link"
	"github.com/infinitevocab/backend/internal/adapter/postgres/scorehistory"
	"github.com/infinitevocab/backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/infinitevocab/backend/internal/adapter/postgres/user"
	wordrepo "github.com/infinitevocab/backend/internal/adapter/postgres/word"
	authpkg "github.com/infinitevocab/backend/internal/auth"
	"github.com/infinitevocab/backend/internal/config"
	adminsvc "github.com/infinitevocab/backend/internal/service/admin"
	categorysvc "github.com/infinitevocab/backend/internal/service/category"
	linksvc "github.com/infinitevocab/backend/internal/service/link"
	searchsvc "github.com/infinitevocab/backend/internal/service/search"
	usersvc "github.com/infinitevocab/backend/internal/service/user"
	wordsvc "github.com/infinitevocab/backend/internal/service/word"
	"github.com/infinitevocab/backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ---------------------------------------------------------------------------
// testServer bundles the running HTTP server, the shared DB pool and the
// JWT manager used to mint tokens for seeded users.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer so slog output lands in the
// test log instead of stderr.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	admins := adminrepo.New(pool)
	categories := categoryrepo.New(pool)
	links := linkrepo.New(pool)
	scores := scorehistory.New(pool)
	users := userrepo.New(pool)
	words := wordrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer")

	vocabCfg := config.VocabConfig{
		MaxWordsPerUser:      10000,
		MaxCategoriesPerUser: 100,
		LeaderboardMaxLimit:  100,
	}

	// 5. Router over real services. Rate limiting stays off so parallel
	// tests never trip it.
	router := rest.NewRouter(rest.RouterDeps{
		Logger:  logger,
		Tokens:  jwtMgr,
		Admins:  admins,
		DB:      pool,
		Version: "test-version",
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Users:      usersvc.NewService(logger, users, vocabCfg),
		Words:      wordsvc.NewService(logger, words, txm, vocabCfg),
		Categories: categorysvc.NewService(logger, categories, vocabCfg),
		Links:      linksvc.NewService(logger, links, words, categories),
		Admin:      adminsvc.NewService(logger, admins, users, scores, txm),
		Search:     searchsvc.NewService(logger, words, categories),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// tokenFor mints a short-lived access token for the given user.
func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	tok, err := ts.jwt.GenerateAccessToken(userID, 15*time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

// ---------------------------------------------------------------------------
// HTTP helpers. doJSON decodes an object body, doJSONList an array body;
// both tolerate empty bodies (204 responses).
// ---------------------------------------------------------------------------

func (ts *testServer) send(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, raw
}

func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.send(t, method, path, token, body)
	if len(raw) == 0 {
		return status, nil
	}

	var result map[string]any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response object (%s %s, status %d): %v\nbody: %s", method, path, status, err, raw)
	}
	return status, result
}

func (ts *testServer) doJSONList(t *testing.T, method, path, token string, body any) (int, []any) {
	t.Helper()

	status, raw := ts.send(t, method, path, token, body)
	if len(raw) == 0 {
		return status, nil
	}

	var result []any
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode response array (%s %s, status %d): %v\nbody: %s", method, path, status, err, raw)
	}
	return status, result
}

// str extracts a string field from a decoded JSON object.
func str(t *testing.T, m map[string]any, key string) string {
	t.Helper()

	v, ok := m[key].(string)
	if !ok {
		t.Fatalf("field %q is not a string: %#v", key, m[key])
	}
	return v
}

// num extracts a numeric field from a decoded JSON object.
func num(t *testing.T, m map[string]any, key string) float64 {
	t.Helper()

	v, ok := m[key].(float64)
	if !ok {
		t.Fatalf("field %q is not a number: %#v", key, m[key])
	}
	return v
}
