package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlserve/sentiment-api/internal/api/middleware"
	"github.com/mlserve/sentiment-api/internal/core/domain"
)

// currentUser extracts the user record injected by the Auth middleware and
// fast-fails with 401 when it is absent (proof the middleware did not run).
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
