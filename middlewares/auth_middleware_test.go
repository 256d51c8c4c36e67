package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func contextWithCookie(token string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/domain/math", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequireAdminRejectsMissingCookie(t *testing.T) {
	called := false
	h := RequireAdmin(testSecret)(func(c echo.Context) error {
		called = true
		return nil
	})

	err := h(contextWithCookie(""))

	require.Error(t, err)
	assert.False(t, called)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)

	msg, ok := he.Message.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "需要管理員權限", msg["message"])
	assert.Equal(t, false, msg["success"])
}

func TestRequireAdminAcceptsValidSession(t *testing.T) {
	called := false
	h := RequireAdmin(testSecret)(func(c echo.Context) error {
		called = true
		assert.Equal(t, "admin", c.Get("role"))
		return nil
	})

	err := h(contextWithCookie(signTestToken(t, testSecret, "admin", time.Hour)))

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireAdminRejectsWrongSecret(t *testing.T) {
	h := RequireAdmin(testSecret)(func(c echo.Context) error { return nil })

	err := h(contextWithCookie(signTestToken(t, "other-secret", "admin", time.Hour)))

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestRequireAdminRejectsExpiredToken(t *testing.T) {
	h := RequireAdmin(testSecret)(func(c echo.Context) error { return nil })

	err := h(contextWithCookie(signTestToken(t, testSecret, "admin", -time.Minute)))

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	h := RequireAdmin(testSecret)(func(c echo.Context) error { return nil })

	err := h(contextWithCookie(signTestToken(t, testSecret, "viewer", time.Hour)))

	require.Error(t, err)
	he := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestIsAdminRequest(t *testing.T) {
	assert.False(t, IsAdminRequest(contextWithCookie(""), testSecret))
	assert.False(t, IsAdminRequest(contextWithCookie("garbage"), testSecret))
	assert.True(t, IsAdminRequest(contextWithCookie(signTestToken(t, testSecret, "admin", time.Hour)), testSecret))
}
