package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/quota"
	"github.com/Laisurjan/hlbhteacher/storage"
)

type SummaryHandler struct{}

func NewSummaryHandler() *SummaryHandler { return &SummaryHandler{} }

// GET /api/summary?school_type=day_school
// 員額摘要加上課程節數彙總。school_type 不帶或帶 both 就兩學制都算並附合計。
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	types := models.AllSchoolTypes
	if raw := strings.TrimSpace(c.QueryParam("school_type")); raw != "" && raw != "both" {
		st := models.SchoolType(raw)
		if _, ok := models.SchoolTypeNames[st]; !ok {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "無效的學制參數"})
		}
		types = []models.SchoolType{st}
	}

	s := quota.Summarize(storage.Data.LoadTeachers())
	agg := quota.Aggregate(storage.Data.LoadCourses(), types...)

	courseHours := make(map[string]any, len(agg.ByType)+1)
	for st, totals := range agg.ByType {
		courseHours[string(st)] = totals
	}
	if agg.Combined != nil {
		courseHours["combined"] = agg.Combined
	}

	return c.JSON(http.StatusOK, map[string]any{
		"school_year":      s.SchoolYear,
		"last_updated":     s.LastUpdated,
		"domains":          s.Domains,
		"total_base":       s.TotalBase,
		"total_required":   s.TotalRequired,
		"total_difference": s.TotalDifference,
		"course_hours":     courseHours,
		"unmapped":         agg.Unmapped,
	})
}
