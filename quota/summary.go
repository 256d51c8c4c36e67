package quota

import (
	"math"

	"github.com/Laisurjan/hlbhteacher/models"
)

// 文件未填學年度時的預設值
const defaultSchoolYear = 115

// DomainSummary 單一領域的員額統計
type DomainSummary struct {
	ID            models.DomainID    `json:"id"`
	Name          string             `json:"name"`
	BaseHours     int                `json:"base_hours"`
	RequiredHours int                `json:"required_hours"`
	Difference    int                `json:"difference"`
	TeacherCount  int                `json:"teacher_count"`
	AvgOvertime   float64            `json:"avg_overtime"`
	Status        models.QuotaStatus `json:"status"`
	Note          string             `json:"note,omitempty"`
}

// Summary 全校員額摘要
type Summary struct {
	SchoolYear      int             `json:"school_year"`
	LastUpdated     string          `json:"last_updated,omitempty"`
	Domains         []DomainSummary `json:"domains"`
	TotalBase       int             `json:"total_base"`
	TotalRequired   int             `json:"total_required"`
	TotalDifference int             `json:"total_difference"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summarize derives per-domain staffing figures from a teachers document.
// Difference is required minus base; a positive difference spread over the
// formal teachers gives the average overtime, rounded to two decimals.
func Summarize(teachers *models.TeachersDoc) Summary {
	s := Summary{
		SchoolYear:  teachers.SchoolYear,
		LastUpdated: teachers.LastUpdated,
		Domains:     make([]DomainSummary, 0, len(teachers.Domains)),
	}
	if s.SchoolYear == 0 {
		s.SchoolYear = defaultSchoolYear
	}

	for _, d := range teachers.Domains {
		ds := DomainSummary{
			ID:            d.ID,
			Name:          d.Name,
			BaseHours:     d.TotalBaseHours,
			RequiredHours: d.RequiredHours,
			Difference:    d.RequiredHours - d.TotalBaseHours,
			TeacherCount:  len(d.FormalTeachers),
			Note:          d.Note,
		}
		switch {
		case ds.Difference > 0:
			ds.Status = models.StatusShortage
		case ds.Difference < 0:
			ds.Status = models.StatusSurplus
		default:
			ds.Status = models.StatusBalanced
		}
		if ds.Difference > 0 && ds.TeacherCount > 0 {
			ds.AvgOvertime = round2(float64(ds.Difference) / float64(ds.TeacherCount))
		}
		s.TotalBase += ds.BaseHours
		s.TotalRequired += ds.RequiredHours
		s.TotalDifference += ds.Difference
		s.Domains = append(s.Domains, ds)
	}
	return s
}
