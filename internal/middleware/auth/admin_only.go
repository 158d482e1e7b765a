package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/labstack/echo/v4"
)

const HeaderAdminToken = "X-Admin-Token"

// AdminOnly admits requests carrying the configured admin token. An empty
// token locks the group entirely.
func AdminOnly(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(HeaderAdminToken)
			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logging.FromContext(c.Request().Context()).Warn("admin_denied",
					"status", http.StatusForbidden,
					"path", c.Path(),
				)
				return echo.NewHTTPError(http.StatusForbidden, "you don't have enough rights")
			}
			return next(c)
		}
	}
}
