package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/storage"
)

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

// GET /api/courses
func (h *CourseHandler) GetCourses(c echo.Context) error {
	return c.JSON(http.StatusOK, storage.Data.LoadCourses())
}

// POST /api/courses
// 課程編輯頁整頁存檔：前端送完整文件回來覆寫。
func (h *CourseHandler) SaveCourses(c echo.Context) error {
	var doc models.CoursesDoc
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "無效的請求內容"})
	}
	if err := c.Validate(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "資料格式不正確"})
	}
	if err := storage.Data.SaveCourses(&doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "儲存失敗"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "儲存成功"})
}
