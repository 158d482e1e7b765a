package handlers

import (
	"net/http"
	"strconv"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/util"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	Searcher catalog.Searcher
}

func NewCatalogHandler(s catalog.Searcher) *CatalogHandler {
	return &CatalogHandler{Searcher: s}
}

func (h *CatalogHandler) Products(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}
	return c.JSON(http.StatusOK, catalog.Products(st.Language()))
}

func (h *CatalogHandler) Search(c echo.Context) error {
	st := device.State(c)
	if st == nil {
		return errNoState
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query error")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := h.Searcher.Search(c.Request().Context(), st.Language(), q, from, size)
	if err != nil {
		return toHTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
