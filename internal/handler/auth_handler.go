package handlers

import (
	"errors"
	"log"
	"net/http"

	"blogplatform/internal/auth"
	"blogplatform/internal/middleware"
	"blogplatform/internal/render"
	"blogplatform/internal/repository"
	"blogplatform/internal/service"
)

func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", &render.HTMLData{Title: "Регистрация"})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "Некорректная форма")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	req := service.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	if err := h.Validate.Struct(req); err != nil {
		setFlash(w, "error", "Проверьте имя, email и пароль (минимум 6 символов)")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	_, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			setFlash(w, "error", "Email уже зарегистрирован")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		log.Printf("ошибка регистрации: %v", err)
		setFlash(w, "error", "Ошибка сервера, попробуйте позже")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Регистрация прошла успешно. Войдите в систему.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", &render.HTMLData{Title: "Вход"})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "Некорректная форма")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	session, token, err := h.AuthService.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			setFlash(w, "error", "Неверный email или пароль")
		} else {
			log.Printf("ошибка входа: %v", err)
			setFlash(w, "error", "Ошибка сервера, попробуйте позже")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.IdentityFrom(r.Context())
	if ok {
		if err := h.AuthService.Logout(r.Context(), ident.SessionID); err != nil {
			log.Printf("ошибка выхода: %v", err)
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
