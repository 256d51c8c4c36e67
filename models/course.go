package models

// Course 一門課程（節數預估表中的一列）
type Course struct {
	Domain    string         `json:"domain" validate:"required"` // 領域顯示名稱，對照 DomainIDByName
	Name      string         `json:"name" validate:"required,max=80"`
	Credits   int            `json:"credits" validate:"min=0"` // 各學期節數加總
	Semesters map[string]int `json:"semesters,omitempty"`      // "1-1".."3-2" → 節數
}

// Department 一個科別與其課程列表
type Department struct {
	ID      string   `json:"id" validate:"required,max=40"`
	Name    string   `json:"name" validate:"required,max=40"` // 例：資處科、會計科
	Classes int      `json:"classes" validate:"min=0"`        // 班級數
	Courses []Course `json:"courses" validate:"dive"`
}

// SchoolSection 單一學制下的科別集合
type SchoolSection struct {
	Departments []Department `json:"departments" validate:"dive"`
}

// CoursesDoc 課程文件（courses.json 的全貌，依 學制 → 科別 → 課程 巢狀）
type CoursesDoc struct {
	SchoolYear    int           `json:"school_year" validate:"min=0"`
	LastUpdated   string        `json:"last_updated"`
	DaySchool     SchoolSection `json:"day_school"`
	EveningSchool SchoolSection `json:"evening_school"`
}

// Section returns the department set for one school type. Unknown types
// read as an empty section, matching the aggregation policy that an absent
// school type contributes zero.
func (d *CoursesDoc) Section(t SchoolType) SchoolSection {
	switch t {
	case DaySchool:
		return d.DaySchool
	case EveningSchool:
		return d.EveningSchool
	}
	return SchoolSection{}
}
