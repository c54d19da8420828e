package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avrstore/internal/infrastructure/ratelimit"
	"avrstore/internal/usecase"
)

type stubVerifier map[string]*usecase.Identity

func (s stubVerifier) VerifyToken(ctx context.Context, token string) (*usecase.Identity, error) {
	if identity, ok := s[token]; ok {
		return identity, nil
	}
	return nil, errors.New("invalid token")
}

var verifier = stubVerifier{
	"user-token":  {UID: "u1"},
	"admin-token": {UID: "root", IsAdmin: true},
}

func ok(c echo.Context) error {
	return c.String(http.StatusOK, currentUIDForTest(c))
}

func currentUIDForTest(c echo.Context) string {
	uid, _ := c.Get(ContextUID).(string)
	return uid
}

func serve(t *testing.T, h echo.HandlerFunc, target, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(verifier)

	assert.Equal(t, http.StatusUnauthorized, serve(t, m.Authenticate(ok), "/", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, m.Authenticate(ok), "/", "Token user-token").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, m.Authenticate(ok), "/", "Bearer nope").Code)

	rec := serve(t, m.Authenticate(ok), "/", "Bearer user-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}

func TestOptional_ContinuesAnonymously(t *testing.T) {
	m := NewAuthMiddleware(verifier)

	rec := serve(t, m.Optional(ok), "/", "Bearer nope")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(t, m.Optional(ok), "/", "Bearer user-token")
	assert.Equal(t, "u1", rec.Body.String())
}

func TestQueryToken(t *testing.T) {
	m := NewAuthMiddleware(verifier)

	rec := serve(t, m.QueryToken(ok), "/v1/ws?token=user-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(t, m.QueryToken(ok), "/v1/ws?token=bad", "").Code)
}

func TestAdminOnly(t *testing.T) {
	auth := NewAuthMiddleware(verifier)
	admin := NewAdminMiddleware()
	h := auth.Authenticate(admin.AdminOnly(ok))

	assert.Equal(t, http.StatusForbidden, serve(t, h, "/", "Bearer user-token").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, "/", "Bearer admin-token").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, admin.AdminOnly(ok), "/", "").Code)
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewRateLimiter(ratelimit.Limit{PerMinute: 2}, nil)
	h := RateLimit(limiter, "api")(ok)

	assert.Equal(t, http.StatusOK, serve(t, h, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, "/", "").Code)

	rec := serve(t, h, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
