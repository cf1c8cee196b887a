package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	apirest "github.com/rowanvale/charforge/api/rest"
	"github.com/rowanvale/charforge/cache"
	"github.com/rowanvale/charforge/config"
	mw "github.com/rowanvale/charforge/middleware"
	"github.com/rowanvale/charforge/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const (
	testSecret   = "integration-test-secret"
	testAudience = "authenticated"
	testAdminKey = "integration-admin-key"
)

// TestServer wraps a real HTTP server with the full route table wired
// the same way main.go does.
type TestServer struct {
	DB     *gorm.DB
	Cache  cache.Cache
	Server *httptest.Server
	URL    string
}

// NewTestServer creates a fully wired server for integration testing.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	c := testutil.SetupTestCache(t)
	logger := zap.NewNop()

	cfg := &config.Config{
		Server: config.ServerConfig{AdminKey: testAdminKey},
		Auth:   config.AuthConfig{JWTSecret: testSecret, JWTAudience: testAudience},
		Cache:  config.CacheConfig{BundleTTL: time.Minute},
		Security: config.SecurityConfig{
			RateLimitRPS:   1000,
			RateLimitBurst: 2000,
		},
	}

	r := gin.New()
	r.Use(mw.TraceID(), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	apirest.Register(r, db, c, cfg, logger)

	server := httptest.NewServer(r)
	return &TestServer{
		DB:     db,
		Cache:  c,
		Server: server,
		URL:    server.URL,
	}
}

// Close shuts down the test server.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// Token mints a bearer token for the given subject.
func (ts *TestServer) Token(t *testing.T, subject string) string {
	t.Helper()
	tok, err := mw.GenerateToken(subject, testSecret, testAudience, time.Hour)
	require.NoError(t, err)
	return tok
}

// --- HTTP helpers ---

func (ts *TestServer) do(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// PostJSON sends a POST request with JSON body and optional Bearer token.
func (ts *TestServer) PostJSON(t *testing.T, path string, body interface{}, token string) *http.Response {
	return ts.do(t, http.MethodPost, path, body, token)
}

// Put sends a PUT request with JSON body and optional Bearer token.
func (ts *TestServer) Put(t *testing.T, path string, body interface{}, token string) *http.Response {
	return ts.do(t, http.MethodPut, path, body, token)
}

// Get sends a GET request with optional Bearer token.
func (ts *TestServer) Get(t *testing.T, path string, token string) *http.Response {
	return ts.do(t, http.MethodGet, path, nil, token)
}

// Delete sends a DELETE request with optional Bearer token.
func (ts *TestServer) Delete(t *testing.T, path string, token string) *http.Response {
	return ts.do(t, http.MethodDelete, path, nil, token)
}

// ReadJSON reads and decodes a JSON response body into the given target.
func ReadJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, target), "body: %s", string(data))
}

// CreateRef creates one reference entity and returns its id.
func (ts *TestServer) CreateRef(t *testing.T, path string, body interface{}) int64 {
	t.Helper()
	resp := ts.PostJSON(t, path, body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var result map[string]interface{}
	ReadJSON(t, resp, &result)
	return int64(result["id"].(float64))
}

// CreateCharacter creates a character owned by the token subject and
// returns its id.
func (ts *TestServer) CreateCharacter(t *testing.T, token string, body map[string]interface{}) int64 {
	t.Helper()
	resp := ts.PostJSON(t, "/characters", body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var result map[string]interface{}
	ReadJSON(t, resp, &result)
	return int64(result["id"].(float64))
}
