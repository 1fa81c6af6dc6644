package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"blogplatform/internal/render"
)

const flashCookieName = "flash"

// setFlash сохраняет одноразовое сообщение в cookie до следующего рендера
func setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash читает flash-сообщение и сразу гасит cookie
func popFlash(w http.ResponseWriter, r *http.Request) *render.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	kind, message, found := strings.Cut(string(decoded), "|")
	if !found || message == "" {
		return nil
	}

	return &render.Flash{Kind: kind, Message: message}
}
