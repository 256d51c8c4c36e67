// Package web holds the embedded templates and static assets plus the
// echo Renderer that serves them.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// funcMap 模板共用函式；formatNumber 與前端 app.js 的格式一致（千分位）
func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatNumber": func(n int) string { return humanize.Comma(int64(n)) },
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
	}
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	t := template.Must(template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html"))
	return &Renderer{templates: t}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// StaticFS returns the embedded static assets rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
