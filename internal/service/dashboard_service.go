package service

import (
	"context"
	"fmt"

	"blogplatform/internal/auth"
	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

// DashboardData - данные для страницы дашборда. Что заполнено, зависит
// от роли: admin - Users и все Posts, author - свои Posts, user - ничего.
type DashboardData struct {
	User  *auth.Identity
	Users []models.User
	Posts []models.Post
}

// DashboardService собирает данные дашборда в одном месте. И общий маршрут
// /dashboard, и маршруты по ролям используют только его.
type DashboardService interface {
	Build(ctx context.Context, ident *auth.Identity) (*DashboardData, error)
}

type dashboardService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewDashboardService(userRepo repository.UserRepository, postRepo repository.PostRepository) DashboardService {
	return &dashboardService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *dashboardService) Build(ctx context.Context, ident *auth.Identity) (*DashboardData, error) {
	data := &DashboardData{User: ident}

	switch ident.Role {
	case models.RoleAdmin:
		users, err := s.userRepo.ListUsers(ctx)
		if err != nil {
			return nil, err
		}

		posts, err := s.postRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}

		data.Users = users
		data.Posts = posts
	case models.RoleAuthor:
		posts, err := s.postRepo.ListByAuthor(ctx, ident.ID)
		if err != nil {
			return nil, err
		}

		data.Posts = posts
	case models.RoleUser:
		// обычному пользователю данные постов не нужны
	default:
		return nil, fmt.Errorf("неизвестная роль: %q", ident.Role)
	}

	return data, nil
}
