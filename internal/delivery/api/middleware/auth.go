package middleware

import (
	"strings"

	"pushgate/internal/delivery/api/response"
	"pushgate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

// AuthMiddleware authenticates API callers from a bearer credential.
type AuthMiddleware struct {
	identity service.IdentityResolver
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityResolver) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate validates the bearer credential and stores the resolved
// user ID on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		credential := strings.TrimPrefix(authHeader, "Bearer ")
		if credential == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		userID, err := m.identity.ResolveRequestingUser(c.Request().Context(), credential)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(userIDContextKey, userID)

		return next(c)
	}
}

// GetUserID returns the authenticated user ID set by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}
