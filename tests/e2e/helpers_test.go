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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/energymonitor-backend/internal/adapter/mqtt"
	"github.com/heartmarshall/energymonitor-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/energymonitor-backend/internal/app"
	"github.com/heartmarshall/energymonitor-backend/internal/config"
	"github.com/heartmarshall/energymonitor-backend/internal/transport/middleware"
)

// testServer wraps the full-stack HTTP server for E2E tests.
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

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 10000},
		Auth: config.AuthConfig{
			JWTSecret:        "e2e-secret-that-is-at-least-32-characters",
			JWTIssuer:        "energymonitor",
			AccessTokenTTL:   time.Hour,
			PasswordHashCost: 4,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
		Insight: config.InsightConfig{
			CostPerKWh:         0.15,
			DefaultHistoryDays: 14,
			MaxHistoryDays:     365,
			DefaultWeeks:       4,
			MaxWeeks:           12,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	svcs := app.NewServices(pool, cfg, logger, mqtt.Noop{})
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, svcs, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request and decodes the JSON response body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// register creates an account through the API and returns its id and token.
func (ts *testServer) register(t *testing.T, email string) (string, string) {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/api/auth/registro", map[string]any{
		"nombre":   "E2E User",
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	user := body["usuario"].(map[string]any)
	return user["_id"].(string), body["token"].(string)
}
