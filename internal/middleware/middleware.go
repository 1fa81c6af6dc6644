package middleware

import (
	"log"
	"net/http"

	"blogplatform/internal/auth"
	"blogplatform/internal/models"
	"blogplatform/internal/service"
)

type Middleware func(http.Handler) http.Handler

const SessionCookieName = "session_token"

// WithIdentity восстанавливает Identity по cookie сессии и кладет его
// в контекст запроса. Без валидной сессии запрос идет дальше анонимным -
// решение об отказе принимают RequireAuth/RequireRole.
func WithIdentity(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ident, err := authService.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				// битая или отозванная сессия - чистим cookie
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), ident)))
		})
	}
}

// RequireAuth пропускает только аутентифицированные запросы,
// остальные перенаправляются на страницу входа
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.IdentityFrom(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole проверяет роль уже аутентифицированного запроса. Отсутствие
// Identity - отказ аутентификации (redirect), неподходящая роль - 403.
// Два режима отказа различимы и проверяются независимо.
func RequireRole(allowedRoles ...models.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := auth.IdentityFrom(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if ident.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				http.Error(w, "Доступ запрещен", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
