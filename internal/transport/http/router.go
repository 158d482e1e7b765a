package httpserver

import (
	"net/http"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/handlers"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/auth"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/csrf"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Registry       *session.Registry
	CatalogHandler *handlers.CatalogHandler
	SupportHandler *handlers.SupportHandler
	Gatherer       prometheus.Gatherer

	DeviceSecret []byte
	DeviceTTL    time.Duration
	CookieSecure bool
	AdminToken   string

	// CSRF disables the double-submit check when nil.
	CSRF *csrf.Config
	// Ready reports readiness; nil means always ready.
	Ready func() error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	mw := []echo.MiddlewareFunc{}
	if d.CSRF != nil {
		mw = append(mw, csrf.Middleware(*d.CSRF))
	}
	mw = append(mw, device.Middleware(device.Config{
		Secret:   d.DeviceSecret,
		TTL:      d.DeviceTTL,
		Secure:   d.CookieSecure,
		Registry: d.Registry,
	}))

	v1 := e.Group("/api/v1", mw...)

	authH := &handlers.AuthHandler{}
	orderH := &handlers.OrderHandler{}
	stateH := &handlers.StateHandler{Order: orderH}
	keysH := &handlers.KeysHandler{}

	v1.GET("/state", stateH.Get)

	v1.GET("/catalog/products", d.CatalogHandler.Products)
	v1.GET("/catalog/search", d.CatalogHandler.Search)

	v1.POST("/auth/register", authH.Register)
	v1.POST("/auth/login", authH.Login)
	v1.POST("/auth/logout", authH.Logout)

	v1.POST("/overlays/:name/open", stateH.OpenOverlay)
	v1.POST("/overlays/:name/close", stateH.CloseOverlay)
	v1.POST("/nav/toggle", stateH.ToggleNav)
	v1.DELETE("/notifications/:id", stateH.DismissNotification)
	v1.PUT("/preferences/language", stateH.SetLanguage)
	v1.PUT("/preferences/theme", stateH.SetTheme)

	v1.POST("/order", orderH.Open)
	v1.POST("/order/confirm", orderH.Confirm)
	v1.POST("/keys/redeem", orderH.Redeem)

	profile := v1.Group("/profile", auth.RequireLogin)
	profile.GET("/products", orderH.PurchasedProducts)

	v1.POST("/support", d.SupportHandler.Submit)

	admin := v1.Group("/admin", auth.AdminOnly(d.AdminToken))

	admin.GET("/keys", keysH.List)
	admin.POST("/keys", keysH.Issue)
	admin.DELETE("/keys/:key", keysH.Revoke)
}
