//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/pgstore"
	"github.com/heartmarshall/habitflow-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/habitflow-backend/internal/app"
	"github.com/heartmarshall/habitflow-backend/internal/config"
	"github.com/heartmarshall/habitflow-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// envelope is the JSON shape every API response shares.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Every call starts from empty
// tables, so e2e tests must not run in parallel.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateAll(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		CORS:      config.CORSConfig{AllowedOrigins: "http://localhost:3000", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowedHeaders: "Content-Type"},
		RateLimit: config.RateLimitConfig{Enabled: false},
		LLM:       config.LLMConfig{MaxTokens: 1000},
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	// The pool belongs to testhelper, so the backend's Close is never called.
	handler := app.NewHandler(cfg, pgstore.New(pool), nil, limiter, logger, nil)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends a JSON request and decodes the response envelope.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()

	var rd *bytes.Reader
	if body == nil {
		rd = bytes.NewReader(nil)
	} else {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

// decode unmarshals the envelope data into v.
func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), "data: %s", env.Data)
	return v
}

type habitJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	IsActive bool   `json:"isActive"`
}

type entryJSON struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// createHabit posts a habit and returns the created record.
func (ts *testServer) createHabit(t *testing.T, name, category string) habitJSON {
	t.Helper()
	status, env := ts.do(t, http.MethodPost, "/api/habits", map[string]any{
		"name":     name,
		"category": category,
		"color":    "#3B82F6",
	})
	require.Equal(t, http.StatusCreated, status, "create habit: %s", env.Error)
	return decode[habitJSON](t, env)
}
