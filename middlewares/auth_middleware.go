package middlewares

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie 存放登入 token 的 cookie 名稱（auth_handler.go 簽發）
const SessionCookie = "quota_session"

// Claims 我們預期的內容（對應 auth_handler.go 簽出的欄位）
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// 從 cookie 取出 token
func extractSession(c echo.Context) (string, error) {
	ck, err := c.Cookie(SessionCookie)
	if err != nil || ck.Value == "" {
		return "", errors.New("missing session cookie")
	}
	return ck.Value, nil
}

// 驗證 JWT（HS256）並取回 claims
func parseSession(c echo.Context, secret string) (*Claims, error) {
	tok, err := extractSession(c)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tok, &Claims{}, func(t *jwt.Token) (any, error) {
		// 防止 alg 被調包
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	// 再驗一次效期（避免 lib 設定被關掉）
	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, errors.New("token expired")
	}
	return claims, nil
}

// IsAdminRequest reports whether the request carries a valid admin session.
// Page handlers use it to decide what to render; it never rejects.
func IsAdminRequest(c echo.Context, secret string) bool {
	claims, err := parseSession(c, secret)
	return err == nil && claims.Role == "admin"
}

// RequireAdmin guards write endpoints. Requests without a valid admin
// session get 403 with the standard envelope.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseSession(c, secret)
			if err != nil || claims.Role != "admin" {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"success": false, "message": "需要管理員權限"})
			}
			// 掛在 context 給後續 handler 用
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
