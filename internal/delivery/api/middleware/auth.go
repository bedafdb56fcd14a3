package middleware

import (
	"log/slog"
	"strings"

	"kitchen/internal/delivery/api/response"
	deliverycontext "kitchen/internal/delivery/context"
	"kitchen/internal/domain/entity"
	"kitchen/internal/domain/service"
	"kitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, logger: params.Logger}
}

// Authenticate validates the bearer token and stores the caller as a usecase.Actor.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		actor := actorFromClaims(claims)
		if !actor.Role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries no known role")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireRole rejects callers without the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if actor.Role != role {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetActor returns the caller authenticated by Authenticate.
func GetActor(c echo.Context) (*usecase.Actor, bool) {
	return deliverycontext.GetActor(c)
}

func actorFromClaims(claims *service.Claims) *usecase.Actor {
	actor := &usecase.Actor{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Locations: entity.LocationsFromStrings(claims.Locations),
	}

	for _, r := range claims.Roles {
		if role := entity.Role(r); role.IsValid() {
			actor.Role = role

			break
		}
	}

	return actor
}
