package handlers

import (
	"net/http"
	"strconv"

	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/util"
	"github.com/labstack/echo/v4"
)

// KeysHandler manages the device's access-key registry.
type KeysHandler struct{}

func (h *KeysHandler) List(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	keys, err := st.AccessKeys(c.Request().Context())
	if err != nil {
		return toHTTP(err)
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	return c.JSON(http.StatusOK, echo.Map{"total": len(keys), "keys": util.Page(keys, from, size)})
}

func (h *KeysHandler) Issue(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	key, err := st.IssueAccessKey(c.Request().Context())
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusCreated, key)
}

func (h *KeysHandler) Revoke(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	if err := st.RevokeAccessKey(c.Request().Context(), c.Param("key")); err != nil {
		return toHTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}
