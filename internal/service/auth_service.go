package service

import (
	"context"
	"fmt"
	"strings"

	"blogplatform/internal/auth"
	"blogplatform/internal/config"
	"blogplatform/internal/models"
	"blogplatform/internal/repository"
)

type RegisterRequest struct {
	Username string `validate:"required,min=3,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Session, string, error)
	Logout(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, token string) (*auth.Identity, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Role:     role,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login проверяет пароль, создает сессию в БД и возвращает подписанный
// токен сессии для cookie
func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, strings.ToLower(email), password)
	if err != nil {
		return nil, "", err
	}

	session, err := s.sessionRepo.Create(ctx, user, s.cfg.SessionDuration)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка при создании сессии: %w", err)
	}

	token, err := auth.NewSessionToken(s.cfg.SessionSecret, session.SessionID, session.ExpiresAt)
	if err != nil {
		return nil, "", err
	}

	return session, token, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// Authenticate восстанавливает Identity по токену из cookie: подпись токена,
// затем строка сессии в БД. Удаленная при выходе сессия делает токен
// бесполезным до истечения его срока.
func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	sessionID, err := auth.ParseSessionToken(s.cfg.SessionSecret, token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &auth.Identity{
		ID:        session.UserID,
		SessionID: session.SessionID,
		Username:  session.Username,
		Role:      session.Role,
	}, nil
}
