package handlers

import (
	"log"
	"net/http"

	"blogplatform/internal/auth"
	"blogplatform/internal/models"
	"blogplatform/internal/render"
)

// Dashboard - общий маршрут /dashboard: данные собирает DashboardService,
// здесь только выбор шаблона по роли
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFrom(r.Context())

	var page string
	switch ident.Role {
	case models.RoleAdmin:
		page = "dashboard-admin.html"
	case models.RoleAuthor:
		page = "dashboard-author.html"
	case models.RoleUser:
		page = "dashboard-user.html"
	default:
		http.Error(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	h.renderDashboard(w, r, page)
}

func (h *Handlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, "dashboard-admin.html")
}

func (h *Handlers) AuthorDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, "dashboard-author.html")
}

func (h *Handlers) UserDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, "dashboard-user.html")
}

func (h *Handlers) renderDashboard(w http.ResponseWriter, r *http.Request, page string) {
	ident, _ := auth.IdentityFrom(r.Context())

	data, err := h.DashboardService.Build(r.Context(), ident)
	if err != nil {
		log.Printf("ошибка при сборке дашборда: %v", err)
		setFlash(w, "error", "Не удалось загрузить дашборд")
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
		return
	}

	h.render(w, r, http.StatusOK, page, &render.HTMLData{
		Title:     "Дашборд",
		Dashboard: data,
	})
}
