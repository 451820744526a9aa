package middleware

import (
	"crypto/subtle"

	"passbook/config"
	domainerrors "passbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware enforces the wallet shared-secret scheme: every protected
// endpoint expects "Authorization: <scheme> <secret>" with the
// operator-configured secret. There are no per-user identities; possession of
// the secret is the whole authorization model.
type AuthMiddleware struct {
	expected string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		expected: cfg.WebService.AuthScheme + " " + cfg.WebService.AuthToken,
	}
}

// Authenticate rejects the request before any handler logic runs unless the
// Authorization header matches exactly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(authHeader), []byte(m.expected)) != 1 {
			return domainerrors.ErrInvalidAuthorization
		}

		return next(c)
	}
}
