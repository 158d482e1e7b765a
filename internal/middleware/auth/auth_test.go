package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Skotchmaster/rockstar_shop/internal/kv"
	"github.com/Skotchmaster/rockstar_shop/internal/middleware/device"
	"github.com/Skotchmaster/rockstar_shop/internal/repo"
	"github.com/Skotchmaster/rockstar_shop/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c echo.Context) error { return c.NoContent(http.StatusOK) }

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	return he.Code
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, configured, provided string
		wantErr                    bool
	}{
		{"match", "s3cret", "s3cret", false},
		{"mismatch", "s3cret", "guess", true},
		{"missing header", "s3cret", "", true},
		{"disabled", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/keys", nil)
			if tt.provided != "" {
				req.Header.Set(HeaderAdminToken, tt.provided)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			err := AdminOnly(tt.configured)(ok)(c)
			if tt.wantErr {
				assert.Equal(t, http.StatusForbidden, codeOf(t, err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRequireLogin(t *testing.T) {
	t.Parallel()
	st, err := session.New(context.Background(), session.Deps{
		DeviceID: "dev",
		Store:    repo.New(kv.Namespaced(kv.NewMemoryStore(), "dev")),
	})
	require.NoError(t, err)
	defer st.Close()

	newCtx := func() echo.Context {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		device.WithState(c, st)
		return c
	}

	assert.Equal(t, http.StatusUnauthorized, codeOf(t, RequireLogin(ok)(newCtx())))

	_, err = st.Register(context.Background(), session.RegisterInput{
		Email: "user@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, RequireLogin(ok)(newCtx()))
}
