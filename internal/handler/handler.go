package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"blogplatform/internal/auth"
	"blogplatform/internal/config"
	"blogplatform/internal/render"
	"blogplatform/internal/service"
)

type Handlers struct {
	AuthService      service.AuthService
	PostService      service.PostService
	DashboardService service.DashboardService
	Cfg              *config.Config
	Validate         *validator.Validate
	Renderer         *render.Renderer
}

func NewHandlers(services *service.Service, renderer *render.Renderer, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      services.Auth,
		PostService:      services.Post,
		DashboardService: services.Dashboard,
		Cfg:              config,
		Validate:         validator.New(),
		Renderer:         renderer,
	}
}

// render дополняет данные страницы текущим пользователем и flash-сообщением
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data *render.HTMLData) {
	if data == nil {
		data = &render.HTMLData{}
	}

	if ident, ok := auth.IdentityFrom(r.Context()); ok {
		data.CurrentUser = ident
	}

	if data.Flash == nil {
		data.Flash = popFlash(w, r)
	}

	h.Renderer.Render(w, status, page, data)
}
