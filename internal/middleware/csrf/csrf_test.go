package csrf

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c echo.Context) error { return c.NoContent(http.StatusOK) }

func run(t *testing.T, cfg Config, req *http.Request) (*httptest.ResponseRecorder, error) {
	t.Helper()
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return rec, Middleware(cfg)(ok)(c)
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	return he.Code
}

func TestMiddleware_SafeMethodIssuesToken(t *testing.T) {
	t.Parallel()
	rec, err := run(t, Config{}, httptest.NewRequest(http.MethodGet, "http://example.com/api/v1/state", nil))
	require.NoError(t, err)

	token := rec.Header().Get("X-CSRF-Token")
	require.NotEmpty(t, token)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, token, cookies[0].Value)
}

func TestMiddleware_UnsafeMethod(t *testing.T) {
	t.Parallel()
	const token = "tok-123"

	newReq := func(origin, header string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/api/v1/auth/login", nil)
		req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: token})
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		if header != "" {
			req.Header.Set("X-CSRF-Token", header)
		}
		return req
	}

	cfg := DefaultConfig()

	_, err := run(t, cfg, newReq("http://example.com", token))
	require.NoError(t, err)

	_, err = run(t, cfg, newReq("http://example.com", "wrong"))
	assert.Equal(t, http.StatusForbidden, codeOf(t, err))

	_, err = run(t, cfg, newReq("http://evil.test", token))
	assert.Equal(t, http.StatusForbidden, codeOf(t, err))

	cfg.EnforceSameOrigin = false
	_, err = run(t, cfg, newReq("", token))
	require.NoError(t, err)
}

func TestMiddleware_SkipPrefixes(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/health/live", nil)
	rec, err := run(t, Config{SkipPrefixes: []string{"/health"}}, req)
	require.NoError(t, err)
	assert.Empty(t, rec.Result().Cookies())
}
