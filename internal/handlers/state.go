package handlers

import (
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/i18n"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/labstack/echo/v4"
)

type StateHandler struct {
	Order *OrderHandler
}

func (h *StateHandler) Get(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}
	return c.JSON(http.StatusOK, st.Snapshot())
}

type openDetailsRequest struct {
	Index  int             `json:"index"`
	Origin *session.Origin `json:"origin,omitempty"`
}

func (h *StateHandler) OpenOverlay(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	switch c.Param("name") {
	case "auth":
		st.OpenAuth()
	case "support":
		st.OpenSupport()
	case "profile":
		st.OpenProfile()
	case "order":
		return h.Order.Open(c)
	case "details":
		var req openDetailsRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		products, err := st.PurchasedProducts()
		if err != nil {
			return toHTTP(err)
		}
		if req.Index < 0 || req.Index >= len(products) {
			return echo.NewHTTPError(http.StatusNotFound, "purchased product not found")
		}
		st.OpenProductDetails(products[req.Index], req.Origin)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown overlay")
	}
	return c.JSON(http.StatusOK, st.Overlays())
}

func (h *StateHandler) CloseOverlay(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	switch c.Param("name") {
	case "auth":
		st.CloseAuth()
	case "support":
		st.CloseSupport()
	case "profile":
		st.CloseProfile()
	case "order":
		st.CloseOrder()
	case "details":
		st.CloseProductDetails()
	case "nav":
		st.CloseMobileNav()
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown overlay")
	}
	return c.JSON(http.StatusOK, st.Overlays())
}

func (h *StateHandler) ToggleNav(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}
	return c.JSON(http.StatusOK, echo.Map{"open": st.ToggleMobileNav()})
}

// DismissNotification is idempotent: unknown ids also get 204.
func (h *StateHandler) DismissNotification(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}
	st.DismissNotification(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

type languageRequest struct {
	Language string `json:"language"`
}

func (h *StateHandler) SetLanguage(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	var req languageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := st.SetLanguage(c.Request().Context(), i18n.Language(req.Language)); err != nil {
		return toHTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func (h *StateHandler) SetTheme(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := st.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return toHTTP(err)
	}
	return c.NoContent(http.StatusNoContent)
}
