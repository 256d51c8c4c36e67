package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/config"
	"github.com/Laisurjan/hlbhteacher/handlers"
	"github.com/Laisurjan/hlbhteacher/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.SessionSecret, cfg.SessionTTLHours)
	pages := handlers.NewPageHandler(cfg.SessionSecret)
	tch := handlers.NewTeacherHandler()
	crs := handlers.NewCourseHandler()
	sum := handlers.NewSummaryHandler()
	set := handlers.NewSettingsHandler()

	// ===== Pages =====
	e.GET("/", pages.Index)
	e.GET("/courses", pages.Courses)
	e.GET("/compare", pages.Compare)

	// ===== Public API =====
	e.POST("/api/login", auth.Login)
	e.POST("/api/logout", auth.Logout)

	e.GET("/api/teachers", tch.GetTeachers)
	e.GET("/api/courses", crs.GetCourses)
	e.GET("/api/summary", sum.GetSummary)
	e.GET("/api/settings", set.GetSettings)

	e.GET("/health", handlers.Health)

	// ===== Admin API（寫入一律要有管理員 session）=====
	adminMW := middlewares.RequireAdmin(cfg.SessionSecret)

	e.POST("/api/teachers", tch.SaveTeachers, adminMW)
	e.POST("/api/courses", crs.SaveCourses, adminMW)
	e.PUT("/api/domain/:domainId", tch.UpdateDomain, adminMW)
}
