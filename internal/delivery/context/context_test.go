package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen/internal/domain/entity"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID_RoundTrip(t *testing.T) {
	c := newEchoContext()
	SetRequestID(c, "req-1")

	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	id := GetRequestID(newEchoContext())

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestActor(t *testing.T) {
	c := newEchoContext()

	_, ok := GetActor(c)
	assert.False(t, ok)

	SetActor(c, &usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin})

	actor, ok := GetActor(c)
	require.True(t, ok)
	assert.True(t, actor.IsAdmin())
}
