package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/middlewares"
	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/quota"
	"github.com/Laisurjan/hlbhteacher/storage"
)

// 預設站名，settings.json 的 site_title 可覆寫
const defaultSiteTitle = "教師員額控管系統"

type PageHandler struct {
	Secret string
}

func NewPageHandler(secret string) *PageHandler { return &PageHandler{Secret: secret} }

func siteTitle(s models.Settings) string {
	if s.SiteTitle != "" {
		return s.SiteTitle
	}
	return defaultSiteTitle
}

// GET / 節數總覽
func (h *PageHandler) Index(c echo.Context) error {
	teachers := storage.Data.LoadTeachers()
	settings := storage.Data.LoadSettings()

	return c.Render(http.StatusOK, "index.html", map[string]any{
		"SiteTitle": siteTitle(settings),
		"Active":    "index",
		"IsAdmin":   middlewares.IsAdminRequest(c, h.Secret),
		"Summary":   quota.Summarize(teachers),
		"Teachers":  teachers,
	})
}

// GET /courses 課程管理
func (h *PageHandler) Courses(c echo.Context) error {
	courses := storage.Data.LoadCourses()
	settings := storage.Data.LoadSettings()

	return c.Render(http.StatusOK, "courses.html", map[string]any{
		"SiteTitle":   siteTitle(settings),
		"Active":      "courses",
		"IsAdmin":     middlewares.IsAdminRequest(c, h.Secret),
		"Courses":     courses,
		"SchoolTypes": models.AllSchoolTypes,
		"TypeNames":   models.SchoolTypeNames,
	})
}

// CompareColumn 年度比較的一欄：單一學年度的各領域節數合計
type CompareColumn struct {
	Year   int
	Totals quota.SchoolTotals
	Total  int
}

func buildCompareColumn(year int, doc *models.CoursesDoc) CompareColumn {
	agg := quota.Aggregate(doc)
	col := CompareColumn{Year: year, Totals: agg.Combined}
	for _, h := range agg.Combined {
		col.Total += h
	}
	return col
}

// GET /compare 年度比較
// 歷年欄位來自 data/ 下的 courses_<學年度>.json 存檔，最後一欄是現行資料。
func (h *PageHandler) Compare(c echo.Context) error {
	settings := storage.Data.LoadSettings()
	current := storage.Data.LoadCourses()

	year := current.SchoolYear
	if year == 0 {
		year = settings.SchoolYear
	}

	cols := []CompareColumn{}
	for _, snap := range storage.Data.Snapshots() {
		if snap.Year == year {
			continue // 現行學年以現行資料為準
		}
		cols = append(cols, buildCompareColumn(snap.Year, snap.Doc))
	}
	cols = append(cols, buildCompareColumn(year, current))

	return c.Render(http.StatusOK, "compare.html", map[string]any{
		"SiteTitle": siteTitle(settings),
		"Active":    "compare",
		"IsAdmin":   middlewares.IsAdminRequest(c, h.Secret),
		"Columns":   cols,
		"DomainIDs": models.AllDomainIDs,
		"Names":     models.DomainNames,
	})
}
