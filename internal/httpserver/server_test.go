package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventRepo "voice-scheduler/internal/event/repository/sqlite"
	"voice-scheduler/pkg/datemath"
	"voice-scheduler/pkg/log"
	"voice-scheduler/pkg/metrics"
	"voice-scheduler/pkg/voicecmd"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	db, err := eventRepo.Open(context.Background(), eventRepo.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, _, err = eventRepo.RunMigrations(db)
	require.NoError(t, err)

	in, err := voicecmd.New(voicecmd.Config{})
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	rec, err := metrics.New("", reg)
	require.NoError(t, err)

	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		SQLiteDB:    db,
		Interpreter: in,
		DateMath:    datemath.NewParserInLocation(nil),
		Metrics:     rec,
		Gatherer:    reg,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err, "missing storage and interpreter")

	_, err = New(log.NewNop(), Config{Port: 8080})
	assert.Error(t, err, "missing mode")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/interpret", strings.NewReader(`{"utterance":"Urgent meeting at 2pm"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(srv, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `voice_scheduler_interpretations_total{outcome="matched"} 1`)
}

func TestReady_DatabaseClosed(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.sqliteDB.Close())

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
