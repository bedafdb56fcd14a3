package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen/config"
	deliverycontext "kitchen/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsOnlyInDebug(t *testing.T) {
	for _, debug := range []bool{true, false} {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders?status=Active", nil), httptest.NewRecorder())

		handler := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusTeapot)
		})

		require.NoError(t, handler(c))
		if debug {
			assert.Contains(t, buf.String(), `"status":418`)
			assert.Contains(t, buf.String(), `"query":"status=Active"`)
		} else {
			assert.Empty(t, buf.String())
		}
	}
}
