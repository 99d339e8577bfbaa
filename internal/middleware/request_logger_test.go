package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	logger, buf := newTestLogger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc")

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))

	out := buf.String()
	assert.Contains(t, out, `"msg":"request handled"`)
	assert.Contains(t, out, `"trace_id":"trace-abc"`)
	assert.Contains(t, out, `"status":204`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestRequestLogger_HandsErrorsToEcho(t *testing.T) {
	logger, buf := newTestLogger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
