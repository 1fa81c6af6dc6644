package service

import (
	"errors"

	"blogplatform/internal/config"
	"blogplatform/internal/repository"
	"blogplatform/internal/storage"
)

// ErrForbidden - у пользователя нет прав на операцию над чужим постом
var ErrForbidden = errors.New("нет прав на выполнение операции")

type Service struct {
	Auth      AuthService
	Post      PostService
	Dashboard DashboardService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:      NewAuthService(rep.User, rep.Session, cfg),
		Post:      NewPostService(rep.Post, storage),
		Dashboard: NewDashboardService(rep.User, rep.Post),
	}
}
