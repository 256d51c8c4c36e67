package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/storage"
)

func seedSummaryData(t *testing.T) {
	t.Helper()
	seedTeachers(t)
	require.NoError(t, storage.Data.SaveCourses(&models.CoursesDoc{
		SchoolYear: 115,
		DaySchool: models.SchoolSection{Departments: []models.Department{
			{ID: "data_processing", Name: "資處科", Courses: []models.Course{
				{Domain: "資處", Name: "程式設計", Credits: 12},
				{Domain: "數學/自然", Name: "數學", Credits: 4}, // 混合標題，對照表外
			}},
		}},
		EveningSchool: models.SchoolSection{Departments: []models.Department{
			{ID: "data_processing", Name: "資處科", Courses: []models.Course{
				{Domain: "資處", Name: "文書處理", Credits: 6},
			}},
		}},
	}))
}

func getSummary(t *testing.T, target string) (int, map[string]any) {
	t.Helper()
	e := newTestEcho(t)
	seedSummaryData(t)
	h := NewSummaryHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodGet, target, ""), rec)
	require.NoError(t, h.GetSummary(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestSummaryMergesStaffingAndCourseHours(t *testing.T) {
	code, body := getSummary(t, "/api/summary")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(115), body["school_year"])

	domains, ok := body["domains"].([]any)
	require.True(t, ok)
	require.Len(t, domains, 2)

	math := domains[0].(map[string]any)
	assert.Equal(t, "math", math["id"])
	assert.Equal(t, float64(2), math["difference"]) // 50 - 48
	assert.Equal(t, float64(3), math["teacher_count"])
	assert.Equal(t, "shortage", math["status"])
	assert.InDelta(t, 0.67, math["avg_overtime"], 0.001)

	english := domains[1].(map[string]any)
	assert.Equal(t, "surplus", english["status"])

	assert.Equal(t, float64(88), body["total_base"])
	assert.Equal(t, float64(86), body["total_required"])
	assert.Equal(t, float64(-2), body["total_difference"])

	hours, ok := body["course_hours"].(map[string]any)
	require.True(t, ok)

	day := hours["day_school"].(map[string]any)
	assert.Equal(t, float64(12), day["data_processing"])

	combined := hours["combined"].(map[string]any)
	assert.Equal(t, float64(18), combined["data_processing"])

	unmapped, ok := body["unmapped"].([]any)
	require.True(t, ok)
	require.Len(t, unmapped, 1)
	first := unmapped[0].(map[string]any)
	assert.Equal(t, "數學/自然", first["name"])
	assert.Equal(t, float64(4), first["hours"])
}

func TestSummarySchoolTypeFilter(t *testing.T) {
	code, body := getSummary(t, "/api/summary?school_type=evening_school")

	assert.Equal(t, http.StatusOK, code)

	hours, ok := body["course_hours"].(map[string]any)
	require.True(t, ok)

	// 只要求單一學制：沒有另一學制、也沒有合計欄
	assert.Contains(t, hours, "evening_school")
	assert.NotContains(t, hours, "day_school")
	assert.NotContains(t, hours, "combined")

	evening := hours["evening_school"].(map[string]any)
	assert.Equal(t, float64(6), evening["data_processing"])
}

func TestSummarySchoolTypeBothMatchesDefault(t *testing.T) {
	code, body := getSummary(t, "/api/summary?school_type=both")

	assert.Equal(t, http.StatusOK, code)

	hours, ok := body["course_hours"].(map[string]any)
	require.True(t, ok)

	// both 與不帶參數同義：兩學制都在，也有合計欄
	assert.Contains(t, hours, "day_school")
	assert.Contains(t, hours, "evening_school")

	combined, ok := hours["combined"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(18), combined["data_processing"])
}

func TestSummaryRejectsUnknownSchoolType(t *testing.T) {
	code, body := getSummary(t, "/api/summary?school_type=night")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
}
