// Package quota 計算節數彙總：課程文件的領域節數加總，與教師文件的員額摘要。
// 純函式，不碰儲存層。
package quota

import (
	"sort"

	"github.com/Laisurjan/hlbhteacher/models"
)

// SchoolTotals 每個領域（固定十二項）在單一學制下的週節數合計
type SchoolTotals map[models.DomainID]int

// UnmappedDomain 對照表查不到的領域名稱與其節數；彙總時必須呈現而非丟棄
type UnmappedDomain struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

// AggregateResult 課程節數彙總結果
type AggregateResult struct {
	ByType   map[models.SchoolType]SchoolTotals `json:"by_type"`
	Combined SchoolTotals                       `json:"combined,omitempty"` // 要求兩學制時才有
	Unmapped []UnmappedDomain                   `json:"unmapped"`
}

func emptyTotals() SchoolTotals {
	t := make(SchoolTotals, len(models.AllDomainIDs))
	for _, id := range models.AllDomainIDs {
		t[id] = 0
	}
	return t
}

// Aggregate sums course-level weekly hours per domain for each requested
// school type. A department missing from a school type contributes zero;
// domain names outside the fixed table land in Unmapped, keyed by name,
// with hours accumulated across the requested school types.
func Aggregate(courses *models.CoursesDoc, types ...models.SchoolType) AggregateResult {
	if len(types) == 0 {
		types = models.AllSchoolTypes
	}

	res := AggregateResult{ByType: make(map[models.SchoolType]SchoolTotals, len(types))}
	unmapped := map[string]int{}

	for _, st := range types {
		totals := emptyTotals()
		for _, dept := range courses.Section(st).Departments {
			for _, course := range dept.Courses {
				if id, ok := models.DomainIDByName(course.Domain); ok {
					totals[id] += course.Credits
				} else {
					unmapped[course.Domain] += course.Credits
				}
			}
		}
		res.ByType[st] = totals
	}

	if len(types) > 1 {
		combined := emptyTotals()
		for _, totals := range res.ByType {
			for id, h := range totals {
				combined[id] += h
			}
		}
		res.Combined = combined
	}

	res.Unmapped = make([]UnmappedDomain, 0, len(unmapped))
	for name, hours := range unmapped {
		res.Unmapped = append(res.Unmapped, UnmappedDomain{Name: name, Hours: hours})
	}
	sort.Slice(res.Unmapped, func(i, j int) bool { return res.Unmapped[i].Name < res.Unmapped[j].Name })
	return res
}
