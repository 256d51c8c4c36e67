package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/storage"
)

// Health 給 /health 用，順便回報資料目錄位置
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "ok",
		"data_dir": storage.Data.Dir(),
	})
}
