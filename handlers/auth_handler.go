package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Laisurjan/hlbhteacher/middlewares"
	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/storage"
)

/* ====================== Config & Helpers ====================== */

// 設定檔完全沒給密碼時的預設值
const defaultAdminPassword = "admin123"

type AuthHandler struct {
	Secret string
	TTL    time.Duration
}

func NewAuthHandler(secret string, ttlHours int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 8
	}
	return &AuthHandler{Secret: secret, TTL: time.Duration(ttlHours) * time.Hour}
}

func (h *AuthHandler) signSession(ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.Secret))
}

// 有雜湊就比對雜湊，否則退回明文欄位（舊設定檔）
func checkAdminPassword(s models.Settings, password string) bool {
	if s.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.AdminPasswordHash), []byte(password)) == nil
	}
	stored := s.AdminPassword
	if stored == "" {
		stored = defaultAdminPassword
	}
	return password == stored
}

/* ====================== DTOs ====================== */

type LoginReq struct {
	Password string `json:"password"`
}

/* ====================== Handlers ====================== */

// POST /api/login
// 密碼錯誤回 200 + success:false，前端靠訊息欄位顯示結果。
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"success": false, "message": "無效的請求內容"})
	}

	settings := storage.Data.LoadSettings()
	if !checkAdminPassword(settings, req.Password) {
		return c.JSON(http.StatusOK, map[string]any{"success": false, "message": "密碼錯誤"})
	}

	token, err := h.signSession(h.TTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"success": false, "message": "登入失敗"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "登入成功"})
}

// POST /api/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	// 蓋掉 cookie 即登出，token 本身不需要註銷
	c.SetCookie(&http.Cookie{
		Name:     middlewares.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "已登出"})
}
