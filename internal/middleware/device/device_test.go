package device

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Skotchmaster/rockstar_shop/internal/kv"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func newMiddleware(t *testing.T) echo.HandlerFunc {
	t.Helper()
	reg := session.NewRegistry(session.RegistryConfig{Store: kv.NewMemoryStore()})
	t.Cleanup(reg.Close)

	mw := Middleware(Config{Secret: secret, TTL: time.Hour, Registry: reg})
	return mw(func(c echo.Context) error {
		require.NotNil(t, State(c))
		assert.Equal(t, ID(c), State(c).DeviceID())
		return c.String(http.StatusOK, ID(c))
	})
}

func serve(t *testing.T, h echo.HandlerFunc, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestMiddleware_IssuesAndReusesDevice(t *testing.T) {
	t.Parallel()
	h := newMiddleware(t)

	first := serve(t, h, nil)
	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	_, err := uuid.Parse(first.Body.String())
	require.NoError(t, err)

	second := serve(t, h, cookies[0])
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Empty(t, second.Result().Cookies())
}

func TestMiddleware_TamperedCookieGetsNewDevice(t *testing.T) {
	t.Parallel()
	h := newMiddleware(t)

	forged, err := Sign(uuid.NewString(), []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	rec := serve(t, h, &http.Cookie{Name: CookieName, Value: forged})
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestParse(t *testing.T) {
	t.Parallel()
	id := uuid.NewString()

	tok, err := Sign(id, secret, time.Hour)
	require.NoError(t, err)
	claims, err := Parse(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Subject)

	expired, err := Sign(id, secret, -time.Minute)
	require.NoError(t, err)
	_, err = Parse(expired, secret)
	require.ErrorIs(t, err, ErrInvalidToken)

	notDevice, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).SignedString(secret)
	require.NoError(t, err)
	_, err = Parse(notDevice, secret)
	require.ErrorIs(t, err, ErrInvalidToken)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: id}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = Parse(none, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
