package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
)

// RBAC enforces the per-route allowed-role set. Each route names its set
// explicitly; there is no hierarchy and no admin-implies-user shortcut.
func RBAC(auth ports.AuthService, allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if err := auth.Authorize(user, allowed...); err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "not enough permissions")
			}
			return next(c)
		}
	}
}
