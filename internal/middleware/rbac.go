package middleware

import (
	"net/http"

	"breakfastpos/internal/common"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route group behind a staff role. It runs after
// JWTMiddleware, which put the role in the request context.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if _, ok := common.GetUserIDFromContext(ctx); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			userRole, ok := common.GetUserRoleFromContext(ctx)
			if !ok || userRole != role {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}

			return next(c)
		}
	}
}
