package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
)

// UserContextKey is where Auth stores the authenticated user record.
const UserContextKey = "user"

// Auth extracts the bearer token, authenticates it against the live user
// store, and injects the resulting user record into context. A valid token
// for a deleted user is rejected; an inactive user gets 403.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInactiveUser):
					return echo.NewHTTPError(http.StatusForbidden, "inactive user")
				case errors.Is(err, domain.ErrUnauthorized):
					return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
				default:
					return err
				}
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
