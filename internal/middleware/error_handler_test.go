package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avesong/go-api-skeleton/internal/response"
)

func newTestApp() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zap.NewNop())
	e.Use(echomw.Recover())
	return e
}

func doRequest(e *echo.Echo, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
	}
	return rec, body
}

func TestErrorHandlerAPIError(t *testing.T) {
	e := newTestApp()
	e.GET("/missing", func(c echo.Context) error {
		return response.NewNotFound("widget not found").WithDetails(map[string]any{"id": "42"})
	})

	rec, body := doRequest(e, http.MethodGet, "/missing")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "widget not found", body["message"])
	assert.Equal(t, "NOT_FOUND", body["errorCode"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok, "details should be an object")
	assert.Equal(t, "42", details["id"])
	assert.NotContains(t, body, "data")
}

func TestErrorHandlerEchoHTTPError(t *testing.T) {
	e := newTestApp()
	e.GET("/forbidden", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusForbidden, "no entry")
	})

	rec, body := doRequest(e, http.MethodGet, "/forbidden")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body["errorCode"])
	assert.Equal(t, "no entry", body["message"])
}

func TestErrorHandlerGenericError(t *testing.T) {
	e := newTestApp()
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("pq: connection reset by peer")
	})

	rec, body := doRequest(e, http.MethodGet, "/boom")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["errorCode"])
	// The raw error text must never reach the client.
	assert.NotContains(t, body["message"], "connection reset")
}

func TestErrorHandlerPanicRecovered(t *testing.T) {
	e := newTestApp()
	e.GET("/panic", func(c echo.Context) error {
		panic("unexpected nil")
	})

	rec, body := doRequest(e, http.MethodGet, "/panic")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["errorCode"])
	assert.NotContains(t, body["message"], "unexpected nil")
}

func TestErrorHandlerRouteNotFound(t *testing.T) {
	e := newTestApp()

	rec, body := doRequest(e, http.MethodGet, "/no/such/route")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body["errorCode"])
}

func TestErrorHandlerMethodNotAllowed(t *testing.T) {
	e := newTestApp()
	e.GET("/only-get", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec, body := doRequest(e, http.MethodPost, "/only-get")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["errorCode"])
}

func TestErrorHandlerHeadRequestHasNoBody(t *testing.T) {
	e := newTestApp()

	rec, _ := doRequest(e, http.MethodHead, "/no/such/route")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len(), "HEAD error responses must not carry a body")
}

func TestErrorHandlerUnknownStatusCollapses(t *testing.T) {
	e := newTestApp()
	e.GET("/odd", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec, body := doRequest(e, http.MethodGet, "/odd")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["errorCode"])
	assert.NotEqual(t, "short and stout", body["message"])
}
