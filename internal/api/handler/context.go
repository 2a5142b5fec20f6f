package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/project-api/internal/api/middleware"
	"github.com/taskhive/project-api/internal/core/domain"
)

// ctxClaims extracts the identity bound by the Auth middleware. A missing
// user id means the middleware did not run for this route; treat it as an
// unauthenticated call rather than panicking downstream.
func ctxClaims(c echo.Context) (domain.UserID, string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.CtxRole).(string)
	return domain.UserID(userID), role, nil
}
