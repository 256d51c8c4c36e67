package handlers

import "strings"

// 去頭尾空白並把連續空白壓成一個（姓名、名稱欄位清洗用）
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
