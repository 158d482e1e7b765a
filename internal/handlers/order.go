package handlers

import (
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct{}

type openOrderRequest struct {
	ProductID int `json:"productId"`
}

// Open selects a catalog product and shows the order overlay.
func (h *OrderHandler) Open(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	var req openOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	p, err := catalog.Find(st.Language(), req.ProductID)
	if err != nil {
		return toHTTP(err)
	}
	st.OpenOrder(p)
	return c.JSON(http.StatusOK, p)
}

func (h *OrderHandler) Confirm(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	purchase, err := st.Purchase(c.Request().Context())
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusCreated, purchase)
}

type redeemRequest struct {
	Key string `json:"key"`
}

func (h *OrderHandler) Redeem(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := st.RedeemKey(c.Request().Context(), req.Key)
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *OrderHandler) PurchasedProducts(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	products, err := st.PurchasedProducts()
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusOK, products)
}
