package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employees-srv/config"
	"employees-srv/pkg/log"
)

type stubRedis struct {
	pingErr error
}

func (s stubRedis) Set(context.Context, string, any, time.Duration) error { return nil }
func (s stubRedis) Get(context.Context, string) (string, error)           { return "", nil }
func (s stubRedis) Delete(context.Context, ...string) error               { return nil }
func (s stubRedis) Exists(context.Context, string) (bool, error)          { return false, nil }
func (s stubRedis) TTL(context.Context, string) (time.Duration, error)    { return 0, nil }
func (s stubRedis) Close() error                                          { return nil }
func (s stubRedis) Ping(context.Context) error                            { return s.pingErr }

func newTestServer(t *testing.T, redisPingErr error) (*HTTPServer, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	srv, err := New(log.NewNopLogger(), Config{
		Logger:      log.NewNopLogger(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		PostgresDB:  db,
		RedisClient: stubRedis{pingErr: redisPingErr},
		Pagination:  config.PaginationConfig{PerPage: 6, AllowEmptyFirstPage: true, CountCacheTTL: time.Minute},
		InternalKey: "key",
	})
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())
	return srv, mock
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNopLogger(), Config{Mode: "test", Port: 8080})
	assert.EqualError(t, err, "postgresDB is required")

	_, err = New(log.NewNopLogger(), Config{Mode: "test"})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	for _, path := range []string{"/health", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestReadyCheck(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv, mock := newTestServer(t, nil)
		mock.ExpectPing()

		w := get(srv, "/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("postgres down", func(t *testing.T) {
		srv, mock := newTestServer(t, nil)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := get(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})

	t.Run("redis down", func(t *testing.T) {
		srv, mock := newTestServer(t, errors.New("redis down"))
		mock.ExpectPing()

		w := get(srv, "/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "Redis")
	})
}

func TestEmployeeRoutesRegistered(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/internal/employees/seed", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(srv, "/api/v1/employees/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
