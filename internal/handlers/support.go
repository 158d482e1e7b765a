package handlers

import (
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/support"
	"github.com/labstack/echo/v4"
)

type SupportHandler struct {
	Service *support.Service
}

func (h *SupportHandler) Submit(c echo.Context) error {
	var form support.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Service.Submit(c.Request().Context(), device.ID(c), form); err != nil {
		return toHTTP(err)
	}
	if st := device.State(c); st != nil {
		st.CloseSupport()
	}
	return c.JSON(http.StatusAccepted, echo.Map{"status": "sent"})
}
