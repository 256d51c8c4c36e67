package models

// FormalTeacher 正式教師（基本節數計入領域基本節數）
type FormalTeacher struct {
	Name      string `json:"name" validate:"required,max=50"`
	BaseHours int    `json:"base_hours" validate:"min=0"`
	IsEvening bool   `json:"is_evening"` // 進修部聘任
	Note      string `json:"note,omitempty" validate:"max=200"`
}

// SubstituteTeacher 代理教師
type SubstituteTeacher struct {
	Name   string `json:"name" validate:"required,max=50"`
	Hours  int    `json:"hours" validate:"min=0"`
	Active bool   `json:"active"` // 停用時保留名單但不計節數
	Note   string `json:"note,omitempty" validate:"max=200"`
}

// Domain 一個領域的員額資料。
// formal_count / evening_formal_count / substitute_count / total_base_hours
// 為衍生欄位，教師名單更動時由伺服器重算（見領域更新 handler）。
type Domain struct {
	ID             DomainID `json:"id" validate:"required,oneof=chinese_social english math science accounting business data_processing multimedia arts pe health_career defense"`
	Name           string   `json:"name" validate:"required,max=40"`
	TotalBaseHours int      `json:"total_base_hours" validate:"min=0"`
	RequiredHours  int      `json:"required_hours" validate:"min=0"`
	Note           string   `json:"note" validate:"max=400"`

	FormalTeachers     []FormalTeacher `json:"formal_teachers" validate:"dive"`
	FormalCount        int             `json:"formal_count" validate:"min=0"`
	EveningFormalCount int             `json:"evening_formal_count" validate:"min=0"`

	SubstituteTeachers []SubstituteTeacher `json:"substitute_teachers" validate:"dive"`
	SubstituteCount    int                 `json:"substitute_count" validate:"min=0"`
}

// Recount refreshes the derived counters from the teacher lists.
func (d *Domain) Recount() {
	d.FormalCount = len(d.FormalTeachers)
	evening, base := 0, 0
	for _, t := range d.FormalTeachers {
		if t.IsEvening {
			evening++
		}
		base += t.BaseHours
	}
	d.EveningFormalCount = evening
	d.TotalBaseHours = base
	d.SubstituteCount = len(d.SubstituteTeachers)
}

// TeachersDoc 教師員額文件（teachers.json 的全貌）
type TeachersDoc struct {
	SchoolYear  int      `json:"school_year" validate:"min=0"`
	LastUpdated string   `json:"last_updated"`
	Domains     []Domain `json:"domains" validate:"dive"`
}

// FindDomain returns a pointer into Domains for in-place updates.
func (t *TeachersDoc) FindDomain(id DomainID) *Domain {
	for i := range t.Domains {
		if t.Domains[i].ID == id {
			return &t.Domains[i]
		}
	}
	return nil
}
