// scripts/hashpassword/main.go
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Laisurjan/hlbhteacher/storage"
)

func main() {
	dataDir := flag.String("data", "data", "資料目錄")
	write := flag.Bool("write", false, "直接寫入 settings.json（預設只印出雜湊）")
	flag.Parse()

	password := flag.Arg(0)
	if password == "" {
		log.Fatal("usage: hashpassword [-data dir] [-write] <password>")
	}

	// 產生 bcrypt 雜湊
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if !*write {
		fmt.Println("bcrypt 雜湊（貼進 settings.json 的 admin_password_hash 欄位）:")
		fmt.Println(string(hashed))
		return
	}

	store, err := storage.NewStore(*dataDir)
	if err != nil {
		log.Fatalf("failed to open data dir: %v", err)
	}

	settings := store.LoadSettings()
	settings.AdminPasswordHash = string(hashed)
	settings.AdminPassword = "" // 改用雜湊後不留明碼
	if err := store.SaveSettings(settings); err != nil {
		log.Fatalf("failed to save settings.json: %v", err)
	}

	fmt.Println("✅ 管理員密碼已更新（bcrypt）")
	fmt.Println("   設定檔:", *dataDir+"/settings.json")
}
