package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Skotchmaster/rockstar_shop/internal/catalog"
	"github.com/Skotchmaster/rockstar_shop/internal/repo"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/Skotchmaster/rockstar_shop/internal/support"
	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

var errNoState = echo.NewHTTPError(http.StatusInternalServerError, "device state missing")

// toHTTP maps domain errors onto status codes. Unknown errors pass through
// and end up as 500 in the central error handler.
func toHTTP(err error) error {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorBody{Error: session.ErrValidation.Error(), Errors: verr.Errors})
	}
	var ferr *support.FormError
	if errors.As(err, &ferr) {
		return echo.NewHTTPError(http.StatusBadRequest, ErrorBody{Error: support.ErrInvalidForm.Error(), Errors: ferr.Fields})
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrValidation),
		errors.Is(err, session.ErrInvalidTheme),
		errors.Is(err, session.ErrKeyRequired),
		errors.Is(err, session.ErrKeyFormat),
		errors.Is(err, session.ErrNoProductSelected):
		code = http.StatusBadRequest
	case errors.Is(err, session.ErrNotAuthenticated),
		errors.Is(err, session.ErrWrongPassword):
		code = http.StatusUnauthorized
	case errors.Is(err, session.ErrUserNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, repo.ErrKeyNotFound):
		code = http.StatusNotFound
	case errors.Is(err, session.ErrUserExists),
		errors.Is(err, repo.ErrKeyAlreadyUsed):
		code = http.StatusConflict
	case errors.Is(err, support.ErrRateLimited):
		code = http.StatusTooManyRequests
	case errors.Is(err, support.ErrNotSubmitted),
		errors.Is(err, catalog.ErrSearch):
		code = http.StatusBadGateway
	case errors.Is(err, session.ErrClosed):
		code = http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	default:
		return err
	}
	return echo.NewHTTPError(code, err.Error()).SetInternal(err)
}
