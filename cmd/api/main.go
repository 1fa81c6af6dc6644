package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogplatform/cmd/app"
	"blogplatform/internal/config"
	handlers "blogplatform/internal/handler"
	"blogplatform/internal/middleware"
	"blogplatform/internal/models"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET не установлен в .env файле")
	}

	db, services, renderer := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, renderer, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/posts", http.StatusSeeOther)
	}).Methods(http.MethodGet)

	router.HandleFunc("/register", handler.RegisterForm).Methods(http.MethodGet)
	router.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.LoginForm).Methods(http.MethodGet)
	router.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	router.Handle("/logout",
		middleware.RequireAuth(http.HandlerFunc(handler.Logout))).Methods(http.MethodGet)

	authorOrAdmin := middleware.RequireRole(models.RoleAuthor, models.RoleAdmin)

	router.HandleFunc("/posts", handler.ListPosts).Methods(http.MethodGet)
	router.Handle("/posts/create",
		authorOrAdmin(http.HandlerFunc(handler.CreatePostForm))).Methods(http.MethodGet)
	router.Handle("/posts/create",
		authorOrAdmin(http.HandlerFunc(handler.CreatePost))).Methods(http.MethodPost)
	router.Handle("/posts/edit/{id}",
		middleware.RequireAuth(http.HandlerFunc(handler.EditPostForm))).Methods(http.MethodGet)
	router.Handle("/posts/edit/{id}",
		middleware.RequireAuth(http.HandlerFunc(handler.EditPost))).Methods(http.MethodPost)
	router.Handle("/posts/delete/{id}",
		middleware.RequireAuth(http.HandlerFunc(handler.DeletePost))).Methods(http.MethodGet)

	router.Handle("/dashboard",
		middleware.RequireAuth(http.HandlerFunc(handler.Dashboard))).Methods(http.MethodGet)
	router.Handle("/dashboard/admin",
		middleware.RequireRole(models.RoleAdmin)(http.HandlerFunc(handler.AdminDashboard))).Methods(http.MethodGet)
	router.Handle("/dashboard/author",
		authorOrAdmin(http.HandlerFunc(handler.AuthorDashboard))).Methods(http.MethodGet)
	router.Handle("/dashboard/user",
		middleware.RequireRole(models.RoleUser, models.RoleAuthor, models.RoleAdmin)(
			http.HandlerFunc(handler.UserDashboard))).Methods(http.MethodGet)

	// static: uploaded images and assets
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.UploadDir))))
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	handlerChain := middleware.Chain(
		router,
		middleware.WithIdentity(services.Auth),
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
