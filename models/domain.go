package models

// DomainID 領域代碼（十二個固定值，教師資料與節數彙總都以此為鍵）
type DomainID string

const (
	DomainChineseSocial  DomainID = "chinese_social"  // 國文/社會
	DomainEnglish        DomainID = "english"         // 英文
	DomainMath           DomainID = "math"            // 數學
	DomainScience        DomainID = "science"         // 自然
	DomainAccounting     DomainID = "accounting"      // 會計
	DomainBusiness       DomainID = "business"        // 商經
	DomainDataProcessing DomainID = "data_processing" // 資處
	DomainMultimedia     DomainID = "multimedia"      // 多媒
	DomainArts           DomainID = "arts"            // 美術
	DomainPE             DomainID = "pe"              // 體育
	DomainHealthCareer   DomainID = "health_career"   // 健康/生涯
	DomainDefense        DomainID = "defense"         // 國防
)

// AllDomainIDs keeps the twelve domains in display order.
var AllDomainIDs = []DomainID{
	DomainChineseSocial,
	DomainEnglish,
	DomainMath,
	DomainScience,
	DomainAccounting,
	DomainBusiness,
	DomainDataProcessing,
	DomainMultimedia,
	DomainArts,
	DomainPE,
	DomainHealthCareer,
	DomainDefense,
}

// DomainNames maps each domain ID to its display name (領域名稱).
var DomainNames = map[DomainID]string{
	DomainChineseSocial:  "國文/社會",
	DomainEnglish:        "英文",
	DomainMath:           "數學",
	DomainScience:        "自然",
	DomainAccounting:     "會計",
	DomainBusiness:       "商經",
	DomainDataProcessing: "資處",
	DomainMultimedia:     "多媒",
	DomainArts:           "美術",
	DomainPE:             "體育",
	DomainHealthCareer:   "健康/生涯",
	DomainDefense:        "國防",
}

// domainIDsByName 反查表；「藝能」沿用舊課表的寫法，視同美術
var domainIDsByName = map[string]DomainID{
	"國文/社會": DomainChineseSocial,
	"英文":    DomainEnglish,
	"數學":    DomainMath,
	"自然":    DomainScience,
	"會計":    DomainAccounting,
	"商經":    DomainBusiness,
	"資處":    DomainDataProcessing,
	"多媒":    DomainMultimedia,
	"美術":    DomainArts,
	"藝能":    DomainArts,
	"體育":    DomainPE,
	"健康/生涯": DomainHealthCareer,
	"國防":    DomainDefense,
}

// DomainIDByName resolves a course's domain display name to its fixed ID.
// Names outside the table (e.g. a combined 數學/自然 heading from an old
// spreadsheet) return ok=false and must be surfaced as unmapped, never
// silently dropped.
func DomainIDByName(name string) (DomainID, bool) {
	id, ok := domainIDsByName[name]
	return id, ok
}

// ValidDomainID reports whether id is one of the twelve fixed values.
func ValidDomainID(id DomainID) bool {
	_, ok := DomainNames[id]
	return ok
}

// SchoolType 學制：日間部 / 進修部
type SchoolType string

const (
	DaySchool     SchoolType = "day_school"     // 日間部
	EveningSchool SchoolType = "evening_school" // 進修部
)

// AllSchoolTypes in document order.
var AllSchoolTypes = []SchoolType{DaySchool, EveningSchool}

// SchoolTypeNames maps school types to display names.
var SchoolTypeNames = map[SchoolType]string{
	DaySchool:     "日間部",
	EveningSchool: "進修部",
}

// QuotaStatus 領域節數狀態：缺額 / 超額 / 平衡
type QuotaStatus string

const (
	StatusShortage QuotaStatus = "shortage"
	StatusSurplus  QuotaStatus = "surplus"
	StatusBalanced QuotaStatus = "balanced"
)
