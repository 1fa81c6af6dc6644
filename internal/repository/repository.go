package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"blogplatform/internal/models"
)

var (
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrEmailTaken         = errors.New("email уже занят")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrPostNotFound       = errors.New("пост не найден")
	ErrSessionNotFound    = errors.New("сессия не найдена")
	ErrSessionExpired     = errors.New("сессия истекла")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID string) error
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
}

type SessionRepository interface {
	Create(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error)
	GetByID(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Session SessionRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Session: NewSessionRepository(db),
	}
}
