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
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/quizreview-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/quizreview-backend/internal/app"
	"github.com/heartmarshall/quizreview-backend/internal/auth"
	"github.com/heartmarshall/quizreview-backend/internal/config"
	"github.com/heartmarshall/quizreview-backend/internal/domain"
)

const (
	jwtSecret = "e2e-secret-at-least-32-chars-long!!"
	jwtIssuer = "e2e-issuer"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by the shared
// PostgreSQL container from testhelper.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Database: config.DatabaseConfig{LockTimeout: 2 * time.Second},
		Auth:     config.AuthConfig{JWTSecret: jwtSecret, JWTIssuer: jwtIssuer},
		Review: config.ReviewConfig{
			Timezone:               "UTC",
			Location:               time.UTC,
			QueueDefaultLimit:      50,
			QueueMaxLimit:          500,
			DashboardTopItems:      5,
			DashboardQueryTimeout:  5 * time.Second,
			ConflictMaxRetries:     3,
			ConflictInitialBackoff: 5 * time.Millisecond,
			ConflictMaxBackoff:     50 * time.Millisecond,
			IdentityCacheTTL:       0,
		},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS", AllowedHeaders: "Authorization,Content-Type"},
		RateLimit: config.RateLimitConfig{WritesPerMinute: 10000, CleanupInterval: time.Minute},
	}

	srv, err := app.NewServer(cfg, logger, pool, clockwork.NewRealClock(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return &testServer{
		URL:    ts.URL,
		Client: ts.Client(),
		Pool:   pool,
		jwt:    auth.NewJWTManager(jwtSecret, jwtIssuer),
	}
}

// reviewerToken grants role to a fresh actor and returns the actor id and a
// bearer token for it.
func (ts *testServer) reviewerToken(t *testing.T, role domain.ReviewerRole) (string, string) {
	t.Helper()
	actorID := testhelper.SeedReviewer(t, ts.Pool, role)
	return actorID, ts.token(t, actorID)
}

// token signs a bearer token without granting any capability.
func (ts *testServer) token(t *testing.T, actorID string) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(actorID, "", 15*time.Minute)
	require.NoError(t, err)
	return tok
}

// do sends a JSON request and decodes the JSON response body into out
// when out is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "%s %s", method, path)
	}
	return resp.StatusCode
}

type logEntry struct {
	ID        string  `json:"id"`
	Seq       int64   `json:"seq"`
	ContentID string  `json:"content_id"`
	Action    string  `json:"action"`
	ActorID   string  `json:"actor_id"`
	Reason    *string `json:"reason"`
}

type commentBody struct {
	ID          string `json:"id"`
	Granularity string `json:"granularity"`
	ParentID    string `json:"parent_id"`
	AuthorID    string `json:"author_id"`
	Text        string `json:"text"`
	Type        string `json:"type"`
	IsResolved  bool   `json:"is_resolved"`
}

type statusBody struct {
	ContentID  string    `json:"content_id"`
	Verified   bool      `json:"verified"`
	Latest     *logEntry `json:"latest_action"`
	Consistent bool      `json:"consistent"`
}

type reviewItem struct {
	ContentID              string  `json:"content_id"`
	UnresolvedCommentCount int     `json:"unresolved_comment_count"`
	LatestAction           *string `json:"latest_action"`
}

type dashboardBody struct {
	Date                 string       `json:"date"`
	UnverifiedCount      int          `json:"unverified_count"`
	PendingCommentsCount int          `json:"pending_comments_count"`
	VerifiedToday        int          `json:"verified_today"`
	RejectedToday        int          `json:"rejected_today"`
	TopReviewItems       []reviewItem `json:"top_review_items"`
	Degraded             []string     `json:"degraded"`
}

type errorBody struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}
