package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"passbook/config"
	domainerrors "passbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m := NewAuthMiddleware(&config.Config{
		WebService: &config.WebServiceConfig{AuthScheme: "ApplePass", AuthToken: "secret"},
	})

	var called bool
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(newAuthTestContext("ApplePass secret")))
	assert.True(t, called)
}

func TestAuthMiddleware_Authenticate_Rejected(t *testing.T) {
	m := NewAuthMiddleware(&config.Config{
		WebService: &config.WebServiceConfig{AuthScheme: "ApplePass", AuthToken: "secret"},
	})

	cases := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "wrong secret", authorization: "ApplePass wrong"},
		{name: "wrong scheme", authorization: "Bearer secret"},
		{name: "secret only", authorization: "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := func(c echo.Context) error {
				t.Fatal("handler must not run without valid credentials")

				return nil
			}

			err := m.Authenticate(next)(newAuthTestContext(tc.authorization))
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAuthorization)
		})
	}
}
