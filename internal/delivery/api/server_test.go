package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifelink/config"
	deliverycontext "lifelink/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "16B"
	cfg.HTTP.AllowOrigins = []string{"https://lifelink.example"}

	e := newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/echo", func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.String(http.StatusOK, string(body))
	})
	e.GET("/panic", func(echo.Context) error { panic("boom") })

	return e
}

func TestNewEcho_Middleware(t *testing.T) {
	t.Run("every response carries a request id", func(t *testing.T) {
		e := newTestEcho(t)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("hi")))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("oversized bodies are rejected", func(t *testing.T) {
		e := newTestEcho(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 64)))
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"PAYLOAD_TOO_LARGE"`)
	})

	t.Run("panics become a generic 500", func(t *testing.T) {
		e := newTestEcho(t)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("cors preflight allows configured origins", func(t *testing.T) {
		e := newTestEcho(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
		req.Header.Set(echo.HeaderOrigin, "https://lifelink.example")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://lifelink.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}
