package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/ports"
)

// AdminOnly gates a route to administrators. It must run after Auth: it reads
// the user id from the context, loads the user record, and checks the role.
// Any lookup failure (including a deleted user behind a still-valid token)
// fails closed with 403.
func AdminOnly(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}

			return next(c)
		}
	}
}
