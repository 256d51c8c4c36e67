// scripts/inspectpdf/main.go
//
// 課綱 PDF 檢視工具：掃出像課程的列（名稱＋各學期節數），
// 匯入前先人工核對用，不直接寫入資料檔。
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

// 出現這些關鍵字的列是標題或小計，不是課程
var titleKeywords = []string{
	"教學科目", "學分", "節數", "表", "課程類別",
	"學年度", "入學", "適用", "部定", "校訂",
	"必修", "選修", "名稱", "類別", "群科",
	"一年級", "二年級", "三年級", "上", "下",
	"科目", "領域", "商業與管理", "設計群",
	"小計", "總計", "合計", "總節數",
}

type course struct {
	Name      string `json:"name"`
	Credits   int    `json:"credits"`
	Semesters []int  `json:"semesters"`
}

func hasChinese(s string) bool {
	for _, r := range s {
		// 基本漢字區
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}

// rowCells 依字距把一列文字切回欄位；PDF 每個字各自帶座標，
// 水平間隔明顯變大就視為換欄。
func rowCells(texts []pdf.Text) []string {
	cells := []string{}
	var b strings.Builder
	lastEnd := 0.0
	for i, t := range texts {
		if i > 0 && t.X-lastEnd > 6 {
			if cell := strings.TrimSpace(b.String()); cell != "" {
				cells = append(cells, cell)
			}
			b.Reset()
		}
		b.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	if cell := strings.TrimSpace(b.String()); cell != "" {
		cells = append(cells, cell)
	}
	return cells
}

// tryParseCourseRow 判斷一列是否為課程：
// 第一個長度夠的欄位當名稱（要有中文、不含標題關鍵字），
// 其餘欄位撿出 0–20 的數字當各學期節數。
func tryParseCourseRow(cells []string) *course {
	name := ""
	nameIdx := -1
	for i, c := range cells {
		if len([]rune(c)) >= 2 {
			name = c
			nameIdx = i
			break
		}
	}
	if name == "" {
		return nil
	}
	for _, kw := range titleKeywords {
		if strings.Contains(name, kw) {
			return nil
		}
	}
	if !hasChinese(name) {
		return nil
	}

	nums := []int{}
	total := 0
	for i, c := range cells {
		if i == nameIdx {
			continue
		}
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			continue
		}
		n := int(f)
		if n >= 0 && n <= 20 {
			nums = append(nums, n)
			total += n
		}
	}
	if len(nums) == 0 || total == 0 {
		return nil
	}
	return &course{Name: name, Credits: total, Semesters: nums}
}

func main() {
	flag.Parse()
	path := flag.Arg(0)
	if path == "" {
		path = "data/115.pdf"
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		log.Fatalf("failed to open pdf: %v", err)
	}
	defer f.Close()

	pages := r.NumPage()
	rowsScanned := 0
	courses := []*course{}

	for n := 1; n <= pages; n++ {
		p := r.Page(n)
		if p.V.IsNull() {
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			log.Printf("⚠️  第 %d 頁讀取失敗: %v", n, err)
			continue
		}
		for _, row := range rows {
			rowsScanned++
			if c := tryParseCourseRow(rowCells(row.Content)); c != nil {
				courses = append(courses, c)
			}
		}
	}

	// 統計走 stderr，課程清單以 JSON 走 stdout，方便直接導到檔案
	log.Printf("檔案: %s", path)
	log.Printf("頁數: %d", pages)
	log.Printf("掃描列數: %d", rowsScanned)
	log.Printf("辨識出課程數: %d", len(courses))

	out, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal courses: %v", err)
	}
	fmt.Println(string(out))
}
