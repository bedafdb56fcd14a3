package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen/internal/delivery/api/response"
	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	domainerrors "kitchen/internal/domain/errors"
	"kitchen/internal/domain/service"
	mockSvc "kitchen/internal/mocks/service"
	"kitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate_SetsActor(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: slog.New(slog.DiscardHandler)})

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{
		UserID:    userID,
		Email:     "sara@example.com",
		Roles:     []string{"Owner", "Staff"},
		Locations: []string{"Thornhill", "Nowhere"},
	}, nil)

	c, _ := newContext("Bearer good-token")

	var seen *usecase.Actor
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = GetActor(c)

		return nil
	})(c)

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, entity.RoleStaff, seen.Role)
	assert.Equal(t, entity.Locations{entity.LocationThornhill}, seen.Locations)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(tokenSvc *mockSvc.MockTokenService)
		wantCode string
	}{
		{
			name:     "missing header",
			wantCode: "MISSING_TOKEN",
		},
		{
			name:     "not a bearer token",
			header:   "Basic abc",
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name:   "no known role",
			header: "Bearer roleless",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("roleless").Return(&service.Claims{Roles: []string{"Owner"}}, nil)
			},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Logger: slog.New(slog.DiscardHandler)})
			c, rec := newContext(tt.header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not run")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{Logger: slog.New(slog.DiscardHandler)})
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newContext("")
		deliverycontext.SetActor(c, &usecase.Actor{Role: entity.RoleAdmin})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("staff is forbidden", func(t *testing.T) {
		c, rec := newContext("")
		deliverycontext.SetActor(c, &usecase.Actor{Role: entity.RoleStaff})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrOrderNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "ORDER_NOT_FOUND",
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unexpected error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}
