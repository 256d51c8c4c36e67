package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/storage"
)

type SettingsHandler struct{}

func NewSettingsHandler() *SettingsHandler { return &SettingsHandler{} }

// GET /api/settings
// 密碼欄位絕不回傳前端。
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, storage.Data.LoadSettings().Public())
}
