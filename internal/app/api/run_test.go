package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	eventsmemory "github.com/Apurer/action-repo-api/internal/domains/events/adapters/memory"
	eventsapp "github.com/Apurer/action-repo-api/internal/domains/events/application"
	eventsports "github.com/Apurer/action-repo-api/internal/domains/events/ports"
	platformobservability "github.com/Apurer/action-repo-api/internal/platform/observability"
)

func testInstruments() *platformobservability.Instruments {
	return &platformobservability.Instruments{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestNewRouter_EndToEndUserFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>action-repo</h1>"), 0o644))
	router := NewRouter(Config{ServiceName: "action-repo", ServiceVersion: "1.0.0", PublicDir: dir}, testInstruments(), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Alice","email":"alice@example.com"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Success bool `json:"success"`
		Data    struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.True(t, created.Success)
	require.EqualValues(t, 4, created.Data.ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/4", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Alice")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/5", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"User not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "action-repo")
}

func TestNewRouter_EventDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := eventsmemory.NewRepository()
	_, err := eventsapp.NewService(repo).Seed(context.Background(), eventsports.SeedInput{})
	require.NoError(t, err)
	router := NewRouter(Config{ServiceName: "action-repo"}, testInstruments(), repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/db-status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"connected":true,"database":"PostgreSQL","table":"events","document_count":3}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var events []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 3)
	require.Equal(t, "PUSH", events[0]["type"])
}

func TestNewRouter_EventDashboardWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reader, cleanup := buildEventReader(context.Background(), "", testInstruments().Logger)
	defer cleanup()
	require.Nil(t, reader)
	router := NewRouter(Config{ServiceName: "action-repo"}, testInstruments(), reader)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/db-status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"connected":false,"error":"No connection pool"}`, rec.Body.String())
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, server, time.Second, testInstruments().Logger) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
