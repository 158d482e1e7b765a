// Package device ties each browser profile to its own storage namespace
// through a signed cookie. The cookie identifies a device, never a user.
package device

import (
	"errors"
	"net/http"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CookieName = "rockstar_device"

const (
	ctxDeviceID = "deviceID"
	ctxState    = "state"
)

type Config struct {
	Secret   []byte
	TTL      time.Duration
	Secure   bool
	Registry *session.Registry
}

func CreateCookie(name, value, path string, expires time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware resolves the device from its cookie, issuing a new one when
// the cookie is missing or does not verify, and loads the device's State.
func Middleware(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			l := logging.FromContext(ctx).With("middleware", "device")

			var id string
			if ck, err := c.Cookie(CookieName); err == nil {
				claims, err := Parse(ck.Value, cfg.Secret)
				if err == nil {
					id = claims.Subject
				} else {
					l.Debug("device_cookie_rejected", logging.Err(err))
				}
			}

			if id == "" {
				id = uuid.NewString()
				token, err := Sign(id, cfg.Secret, cfg.TTL)
				if err != nil {
					l.Error("device_sign_failed", "status", 500, logging.Err(err))
					return echo.NewHTTPError(http.StatusInternalServerError, "could not issue device cookie")
				}
				c.SetCookie(CreateCookie(CookieName, token, "/", time.Now().Add(cfg.TTL), cfg.Secure))
				l.Debug("device_issued", "device", id)
			}

			st, err := cfg.Registry.Get(ctx, id)
			if err != nil {
				if errors.Is(err, session.ErrClosed) {
					return echo.NewHTTPError(http.StatusServiceUnavailable, "shutting down")
				}
				l.Error("state_load_failed", "status", 500, "device", id, logging.Err(err))
				return echo.NewHTTPError(http.StatusInternalServerError, "could not load state")
			}

			c.Set(ctxDeviceID, id)
			c.Set(ctxState, st)
			return next(c)
		}
	}
}

func ID(c echo.Context) string {
	id, _ := c.Get(ctxDeviceID).(string)
	return id
}

// State returns the device's State or nil outside the middleware.
func State(c echo.Context) *session.State {
	st, _ := c.Get(ctxState).(*session.State)
	return st
}

// WithState attaches st to c the way Middleware does.
func WithState(c echo.Context, st *session.State) {
	c.Set(ctxDeviceID, st.DeviceID())
	c.Set(ctxState, st)
}
