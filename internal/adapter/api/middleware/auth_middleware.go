package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"avrstore/internal/usecase"
	"avrstore/pkg/errors"
	"avrstore/pkg/response"
)

const (
	ContextUID      = "uid"
	ContextIdentity = "identity"
)

type AuthMiddleware struct {
	verifier usecase.IdentityVerifier
}

func NewAuthMiddleware(verifier usecase.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate requires a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		setIdentity(c, identity)
		return next(c)
	}
}

// Optional attaches the identity when a valid token is present and
// otherwise continues anonymously.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get("Authorization"))
		if !ok {
			return next(c)
		}

		if identity, err := m.verifier.VerifyToken(c.Request().Context(), token); err == nil {
			setIdentity(c, identity)
		}
		return next(c)
	}
}

// QueryToken authenticates with ?token= for clients that cannot send
// headers, such as browser websockets.
func (m *AuthMiddleware) QueryToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			return m.Authenticate(next)(c)
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		setIdentity(c, identity)
		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c echo.Context, identity *usecase.Identity) {
	c.Set(ContextUID, identity.UID)
	c.Set(ContextIdentity, identity)
}

// IdentityFrom returns the identity set by the auth middleware, if any.
func IdentityFrom(c echo.Context) (*usecase.Identity, bool) {
	identity, ok := c.Get(ContextIdentity).(*usecase.Identity)
	return identity, ok && identity != nil
}
