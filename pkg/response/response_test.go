package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "employees-srv/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOK(t *testing.T) {
	c, w := newContext()
	OK(c, gin.H{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, map[string]any{"hello": "world"}, resp.Data)
}

func TestError(t *testing.T) {
	notFound := pkgErrors.NewHTTPStatusError(10003, "Employee not found", http.StatusNotFound)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "http error", err: notFound, wantStatus: http.StatusNotFound, wantCode: 10003},
		{name: "wrapped http error", err: errors.Join(errors.New("ctx"), notFound), wantStatus: http.StatusNotFound, wantCode: 10003},
		{name: "default status", err: pkgErrors.NewHTTPError(10001, "bad"), wantStatus: http.StatusBadRequest, wantCode: 10001},
		{name: "validation", err: pkgErrors.NewValidationError(20001, "limit", "must be a number"), wantStatus: http.StatusBadRequest, wantCode: 20001},
		{name: "unknown", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: codeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
			assert.NotContains(t, w.Body.String(), "db down")
		})
	}
}

func TestErrorWithMap(t *testing.T) {
	errDomain := errors.New("domain: invalid page")
	mapped := pkgErrors.NewHTTPStatusError(10002, "Invalid page", http.StatusNotFound)

	c, w := newContext()
	ErrorWithMap(c, errors.Join(errDomain), ErrorMapping{errDomain: mapped})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 10002, decode(t, w).ErrorCode)
}

func TestUnauthorized(t *testing.T) {
	c, w := newContext()
	Unauthorized(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, codeUnauthorized, decode(t, w).ErrorCode)
}

func TestBindError(t *testing.T) {
	c, w := newContext()
	BindError(c, errors.New("invalid limit"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, codeValidation, resp.ErrorCode)
	assert.Equal(t, "invalid limit", resp.Errors)
}

func TestDateTime_MarshalJSON(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)

	b, err := json.Marshal(DateTime(ts))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09 14:05:00"`, string(b))
}
