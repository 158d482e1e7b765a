package handlers

import (
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct{}

func (h *AuthHandler) Register(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	var req session.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := st.Register(c.Request().Context(), req)
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	var req session.LoginInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := st.Login(c.Request().Context(), req)
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}
	if err := st.Logout(c.Request().Context()); err != nil {
		return toHTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}
