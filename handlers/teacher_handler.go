package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/storage"
)

type TeacherHandler struct{}

func NewTeacherHandler() *TeacherHandler { return &TeacherHandler{} }

/*** Payloads ***/

// 欄位全部用指標：沒帶的欄位不動，帶了才覆寫
type domainPayload struct {
	TotalBaseHours     *int                        `json:"total_base_hours"`
	RequiredHours      *int                        `json:"required_hours"`
	Note               *string                     `json:"note"`
	FormalTeachers     *[]models.FormalTeacher     `json:"formal_teachers"`
	SubstituteTeachers *[]models.SubstituteTeacher `json:"substitute_teachers"`
}

func (p *domainPayload) norm() {
	if p.Note != nil {
		*p.Note = strings.TrimSpace(*p.Note)
	}
	if p.FormalTeachers != nil {
		for i := range *p.FormalTeachers {
			(*p.FormalTeachers)[i].Name = collapse((*p.FormalTeachers)[i].Name)
			(*p.FormalTeachers)[i].Note = strings.TrimSpace((*p.FormalTeachers)[i].Note)
		}
	}
	if p.SubstituteTeachers != nil {
		for i := range *p.SubstituteTeachers {
			(*p.SubstituteTeachers)[i].Name = collapse((*p.SubstituteTeachers)[i].Name)
			(*p.SubstituteTeachers)[i].Note = strings.TrimSpace((*p.SubstituteTeachers)[i].Note)
		}
	}
}

func validateDomainPayload(p *domainPayload) map[string]string {
	errs := map[string]string{}
	if p.TotalBaseHours != nil && *p.TotalBaseHours < 0 {
		errs["total_base_hours"] = "基本節數不可為負數"
	}
	if p.RequiredHours != nil && *p.RequiredHours < 0 {
		errs["required_hours"] = "應授節數不可為負數"
	}
	if p.FormalTeachers != nil {
		for _, t := range *p.FormalTeachers {
			if t.Name == "" {
				errs["formal_teachers"] = "教師姓名不可為空白"
				break
			}
			if t.BaseHours < 0 {
				errs["formal_teachers"] = "教師節數不可為負數"
				break
			}
		}
	}
	if p.SubstituteTeachers != nil {
		for _, t := range *p.SubstituteTeachers {
			if t.Name == "" {
				errs["substitute_teachers"] = "代理教師姓名不可為空白"
				break
			}
			if t.Hours < 0 {
				errs["substitute_teachers"] = "代理教師節數不可為負數"
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

/*** CRUD ***/

// GET /api/teachers
func (h *TeacherHandler) GetTeachers(c echo.Context) error {
	return c.JSON(http.StatusOK, storage.Data.LoadTeachers())
}

// POST /api/teachers
// 整份文件覆寫，last_updated 由儲存層蓋章。
func (h *TeacherHandler) SaveTeachers(c echo.Context) error {
	var doc models.TeachersDoc
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "無效的請求內容"})
	}
	if err := c.Validate(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "資料格式不正確"})
	}
	if err := storage.Data.SaveTeachers(&doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "儲存失敗"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "儲存成功"})
}

// PUT /api/domain/:domainId
func (h *TeacherHandler) UpdateDomain(c echo.Context) error {
	id := models.DomainID(c.Param("domainId"))
	// 十二個固定領域以外的代碼直接 404，不必解析內容
	if !models.ValidDomainID(id) {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "找不到該領域"})
	}

	var p domainPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "無效的請求內容"})
	}
	p.norm()
	if errs := validateDomainPayload(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "資料格式不正確", "fields": errs})
	}

	doc := storage.Data.LoadTeachers()
	d := doc.FindDomain(id)
	if d == nil {
		return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "找不到該領域"})
	}

	if p.TotalBaseHours != nil {
		d.TotalBaseHours = *p.TotalBaseHours
	}
	if p.RequiredHours != nil {
		d.RequiredHours = *p.RequiredHours
	}
	if p.Note != nil {
		d.Note = *p.Note
	}
	if p.FormalTeachers != nil {
		// 名單換了就重算人數，基本節數合計也改用名單加總
		d.FormalTeachers = *p.FormalTeachers
		d.Recount()
	}
	if p.SubstituteTeachers != nil {
		d.SubstituteTeachers = *p.SubstituteTeachers
		d.SubstituteCount = len(d.SubstituteTeachers)
	}

	if err := storage.Data.SaveTeachers(doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "更新失敗"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "更新成功", "domain": d})
}
