package main

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Laisurjan/hlbhteacher/config"
	"github.com/Laisurjan/hlbhteacher/routes"
	"github.com/Laisurjan/hlbhteacher/storage"
	"github.com/Laisurjan/hlbhteacher/web"
)

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i any) error { return v.validate.Struct(i) }

func main() {
	// .env 沒有也無妨，正式環境直接吃環境變數
	_ = godotenv.Load()

	cfg := config.Load()

	// 資料目錄開不起來就立刻停（early fail）
	storage.Open(cfg.DataDir)

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.AppEnv == "dev"
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	e.Validator = &payloadValidator{validate: validator.New()}
	e.Renderer = web.NewRenderer()
	e.StaticFS("/static", web.StaticFS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Println("教師員額控管系統 啟動")
	log.Printf("資料目錄: %s", cfg.DataDir)
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
