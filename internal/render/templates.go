package render

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"blogplatform/internal/auth"
	"blogplatform/internal/models"
	"blogplatform/internal/service"
)

// Flash - одноразовое сообщение, показываемое на следующей странице
type Flash struct {
	Kind    string // "success" или "error"
	Message string
}

// HTMLData - общая модель данных для всех страниц
type HTMLData struct {
	Title       string
	CurrentUser *auth.Identity
	Flash       *Flash
	FormData    map[string]string
	Post        *models.Post
	Posts       []models.Post
	Dashboard   *service.DashboardData
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006, 15:04")
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
}

type Renderer struct {
	cache map[string]*template.Template
}

// NewRenderer собирает кэш шаблонов: каждая страница парсится вместе
// с base.html и партиалами
func NewRenderer(dir string) (*Renderer, error) {
	cache := map[string]*template.Template{}

	pages, err := filepath.Glob(filepath.Join(dir, "pages", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска шаблонов: %w", err)
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(functions).ParseFiles(
			filepath.Join(dir, "base.html"),
			page,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка парсинга шаблона %s: %w", name, err)
		}

		cache[name] = ts
	}

	if len(cache) == 0 {
		return nil, fmt.Errorf("шаблоны не найдены в %s", dir)
	}

	return &Renderer{cache: cache}, nil
}

// Render пишет страницу через буфер, чтобы ошибка шаблона не оставила
// клиенту полстраницы
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *HTMLData) {
	ts, ok := r.cache[page]
	if !ok {
		log.Printf("шаблон %s отсутствует в кэше", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &HTMLData{}
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		log.Printf("ошибка рендеринга шаблона %s: %v", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}
