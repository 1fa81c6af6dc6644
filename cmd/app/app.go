package app

import (
	"log"

	"blogplatform/internal/config"
	"blogplatform/internal/database"
	"blogplatform/internal/render"
	"blogplatform/internal/repository"
	"blogplatform/internal/service"
	"blogplatform/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service, *render.Renderer) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// image storage backend
	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать хранилище изображений: %v", err)
	}

	// template cache
	renderer, err := render.NewRenderer(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("Не удалось загрузить шаблоны: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, services, renderer
}
