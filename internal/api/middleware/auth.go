package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/project-api/internal/api/metrics"
	"github.com/taskhive/project-api/internal/core/ports"
)

// Context keys under which the auth middleware binds the verified identity.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth verifies the bearer token and injects the resolved identity into the
// request context. It decides who is calling, never what they may do.
func Auth(tokens ports.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			start := time.Now()
			claims, err := tokens.Verify(parts[1])
			metrics.TokenVerifyDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, string(claims.UserID))
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
