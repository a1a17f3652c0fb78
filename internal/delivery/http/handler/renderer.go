package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lovelyplace-web/internal/delivery/http/middleware"
)

// Page - общие данные всех HTML страниц
type Page struct {
	Title       string
	SearchQuery string
	AdminLogin  bool
	Flash       *middleware.Flash
	Data        interface{}
}

// Renderer - HTML шаблоны страниц
type Renderer struct {
	templates *template.Template
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	// at - элемент среза или пустая строка за его границей
	"at": func(items []string, i int) string {
		if i < 0 || i >= len(items) {
			return ""
		}
		return items[i]
	},
	"contains": func(items []string, s string) bool {
		for _, item := range items {
			if item == s {
				return true
			}
		}
		return false
	},
}

// NewRenderer загружает шаблоны templates/*.html из fsys
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(templateFuncs).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render выполняет шаблон в буфер, чтобы ошибка не оставила половину страницы
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, page Page) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// newPage заполняет общие поля страницы из состояния сессии
func newPage(c *fiber.Ctx, title string, data interface{}) Page {
	snap := middleware.StateFrom(c).Snapshot()
	return Page{
		Title:       title,
		SearchQuery: snap.SearchQuery,
		AdminLogin:  snap.AdminLogin,
		Flash:       middleware.PopFlash(c),
		Data:        data,
	}
}
