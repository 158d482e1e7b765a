package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/handlers"
	"github.com/Skotchmaster/rockstar_shop/internal/logging"
	"github.com/labstack/echo/v4"
)

// HandleError writes every error as {"error": msg}, plus the violation list
// for validation failures.
func HandleError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	body := handlers.ErrorBody{Error: "Internal Server Error"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case handlers.ErrorBody:
			body = m
		case string:
			body.Error = m
		case nil:
			body.Error = http.StatusText(code)
		default:
			body.Error = fmt.Sprint(m)
		}
	}

	l := logging.FromContext(c.Request().Context())
	if code >= http.StatusInternalServerError {
		l.Error("request_failed",
			"status", code,
			"path", c.Path(),
			"method", c.Request().Method,
			"error", err,
		)
	} else {
		l.Warn("request_rejected",
			"status", code,
			"path", c.Path(),
			"method", c.Request().Method,
			"error", err,
		)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}
