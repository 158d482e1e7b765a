package auth

import (
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/labstack/echo/v4"
)

// RequireLogin rejects requests from devices with nobody signed in. It must
// run after the device middleware.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		st := device.State(c)
		if st == nil || st.CurrentUser() == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
		}
		return next(c)
	}
}
