package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/ports"
)

// ContextUserID is the echo context key under which Auth stores the
// authenticated user's id.
const ContextUserID = "user_id"

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and injects the subject user id into the
// request context. The prefix match is case-sensitive: only "Bearer " counts.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication token")
			}

			userID, err := tokens.Verify(header[len(bearerPrefix):])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
