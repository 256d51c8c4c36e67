// scripts/importcourses/main.go
//
// 從課程節數預估表（teacher.xlsx 第二個工作表）匯入日間部課程，
// 寫進資料目錄的 courses.json。進修部既有資料不動。
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"github.com/Laisurjan/hlbhteacher/config"
	"github.com/Laisurjan/hlbhteacher/models"
	"github.com/Laisurjan/hlbhteacher/storage"
)

// 不匯入的課程名稱（子字串比對）
var excludedCourses = []string{
	"小計", "總節數", "團體活動", "彈性課程增廣", "彈性課程補強", "本土語",
	"小                        計",
}

type domainRule struct {
	keyword string
	domain  string
}

// 課程名稱 → 領域。依序比對，第一個命中就用；順序是有意義的。
var courseDomainRules = []domainRule{
	// 國文/社會
	{"國語文", "國文/社會"},
	{"現代詩文賞析", "國文/社會"},
	{"古典文學選讀", "國文/社會"},
	{"國文閱讀與寫作", "國文/社會"},
	{"跨領域趨勢閱讀", "國文/社會"},
	{"歷史", "國文/社會"},
	{"地理", "國文/社會"},
	{"公民與社會", "國文/社會"},
	{"法律與生活", "國文/社會"},
	{"文學與生活", "國文/社會"},
	// 英文
	{"英語文", "英文"},
	{"英文", "英文"},
	{"生活英語會話", "英文"},
	{"基礎英文閱讀與寫作", "英文"},
	{"英語聽講練習", "英文"},
	{"英文文法", "英文"},
	{"英語口語訓練", "英文"},
	{"商業英文", "英文"},
	{"觀光英語", "英文"},
	{"英文閱讀", "英文"},
	// 數學
	{"數學", "數學"},
	{"數學演習", "數學"},
	{"數學應用", "數學"},
	{"商業數學", "數學"},
	{"趣味數學", "數學"},
	// 自然
	{"物理", "自然"},
	{"化學", "自然"},
	{"生物", "自然"},
	{"自然科學", "自然"},
	// 體育
	{"體育", "體育"},
	{"體  育", "體育"},
	// 健康/生涯
	{"健康與護理", "健康/生涯"},
	{"生涯規劃", "健康/生涯"},
	{"生命教育", "健康/生涯"},
	// 美術（設計群專業課另歸各科領域）
	{"音樂", "美術"},
	{"美術", "美術"},
	{"藝術生活", "美術"},
	// 國防
	{"全民國防教育", "國防"},
	// 跨領域選修
	{"人工智慧", "資處"},
	{"說故事學行銷", "商經"},
}

type deptSpec struct {
	id   string
	name string
	cols map[string]int // 學期鍵 "1-1".."3-2" → 欄索引（0 起算）
}

// 預估表的科別欄位配置；多媒體設計科沒有三年級
var departments = []deptSpec{
	{"multimedia", "多媒體設計科", map[string]int{"1-1": 3, "1-2": 4, "2-1": 13, "2-2": 14}},
	{"data_processing", "資處科", map[string]int{"1-1": 5, "1-2": 6, "2-1": 15, "2-2": 16, "3-1": 23, "3-2": 24}},
	{"accounting", "會計科", map[string]int{"1-1": 7, "1-2": 8, "2-1": 17, "2-2": 18, "3-1": 25, "3-2": 26}},
	{"business", "商經科", map[string]int{"1-1": 9, "1-2": 10, "2-1": 19, "2-2": 20, "3-1": 27, "3-2": 28}},
	{"applied_english", "應用英語科", map[string]int{"1-1": 11, "1-2": 12, "2-1": 21, "2-2": 22, "3-1": 29, "3-2": 30}},
}

// 學期鍵的固定輸出順序
var semesterKeys = []string{"1-1", "1-2", "2-1", "2-2", "3-1", "3-2"}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, idx int) int {
	raw := cell(row, idx)
	if raw == "" {
		return 0
	}
	// 表格裡偶有 "3.0" 這種浮點字串
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func isExcluded(name string) bool {
	for _, ex := range excludedCourses {
		if strings.Contains(name, ex) {
			return true
		}
	}
	return false
}

// 領域標題列：去掉換行與空白後做關鍵字比對
func headingDomain(cellText, current string) string {
	t := strings.ReplaceAll(cellText, "\n", "")
	t = strings.ReplaceAll(t, " ", "")
	if t == "" {
		return current
	}
	switch {
	case strings.Contains(t, "國文") || strings.Contains(t, "社會"):
		return "國文/社會"
	case strings.Contains(t, "英文"):
		return "英文"
	case strings.Contains(t, "數學") || strings.Contains(t, "自然"):
		return "數學/自然"
	case strings.Contains(t, "會計"):
		return "會計"
	case strings.Contains(t, "商經"):
		return "商經"
	case strings.Contains(t, "資處"):
		return "資處"
	case strings.Contains(t, "多媒"):
		return "多媒"
	case strings.Contains(t, "藝能"):
		return "藝能"
	}
	return current
}

func courseDomain(name, current string) string {
	for _, rule := range courseDomainRules {
		if strings.Contains(name, rule.keyword) {
			return rule.domain
		}
	}
	return current
}

func parseDept(rows [][]string, spec deptSpec) models.Department {
	dept := models.Department{ID: spec.id, Name: spec.name, Classes: 2}

	currentDomain := ""
	// 前四列是標題，課程從第五列開始
	for i := 4; i < len(rows); i++ {
		row := rows[i]

		if heading := cell(row, 1); heading != "" {
			currentDomain = headingDomain(heading, currentDomain)
		}

		name := cell(row, 2)
		if name == "" || isExcluded(name) {
			continue
		}

		semesters := map[string]int{}
		total := 0
		for _, key := range semesterKeys {
			col, ok := spec.cols[key]
			if !ok {
				continue
			}
			v := cellInt(row, col)
			semesters[key] = v
			total += v
		}

		// 整學年都沒節數就代表該科系沒開這門課
		if total == 0 {
			continue
		}

		dept.Courses = append(dept.Courses, models.Course{
			Domain:    courseDomain(name, currentDomain),
			Name:      name,
			Credits:   total,
			Semesters: semesters,
		})
	}
	return dept
}

func run(workbook, dataDir string) error {
	f, err := excelize.OpenFile(workbook)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	// 第二個工作表才是節數預估表
	sheet := f.GetSheetName(1)
	if sheet == "" {
		return fmt.Errorf("workbook has no second sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	store, err := storage.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open data dir: %w", err)
	}

	// 保留進修部既有資料，只換日間部
	doc := store.LoadCourses()
	if doc.SchoolYear == 0 {
		// 全新資料檔以預估表的 113 學年起算，之後由系統設定接手
		doc.SchoolYear = 113
	}
	doc.DaySchool = models.SchoolSection{}
	for _, spec := range departments {
		doc.DaySchool.Departments = append(doc.DaySchool.Departments, parseDept(rows, spec))
	}

	if err := store.SaveCourses(doc); err != nil {
		return fmt.Errorf("failed to save courses.json: %w", err)
	}

	fmt.Println("✅ 課程資料已寫入", dataDir+"/courses.json")
	fmt.Printf("   共 %d 個科系\n", len(doc.DaySchool.Departments))
	for _, dept := range doc.DaySchool.Departments {
		fmt.Printf("   - %s: %d 門課程\n", dept.Name, len(dept.Courses))
		counts := map[string]int{}
		order := []string{}
		for _, course := range dept.Courses {
			if _, ok := counts[course.Domain]; !ok {
				order = append(order, course.Domain)
			}
			counts[course.Domain]++
		}
		for _, d := range order {
			fmt.Printf("       %s: %d 門\n", d, counts[d])
		}
	}
	return nil
}

func main() {
	// 資料目錄跟伺服器同一套來源（.env / DATA_DIR），預估表路徑用第一個參數
	_ = godotenv.Load()
	flag.Parse()

	workbook := flag.Arg(0)
	if workbook == "" {
		workbook = "data/teacher.xlsx"
	}

	if err := run(workbook, config.Load().DataDir); err != nil {
		log.Fatal(err)
	}
}
