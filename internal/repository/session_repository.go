package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogplatform/internal/models"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create создает сессию со снимком пользователя. Старые сессии пользователя
// удаляются - активна всегда не больше одной.
func (r *sessionRepository) Create(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при удалении старых сессий: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		SessionID: uuid.New().String(),
		UserID:    user.UserID,
		Username:  user.Username,
		Role:      user.Role,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	query := `
		INSERT INTO sessions (session_id, user_id, username, role, expires_at, created_at)
		VALUES (:session_id, :user_id, :username, :role, :expires_at, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании сессии: %w", err)
	}

	return session, nil
}

// GetByID возвращает сессию, проверяя срок действия. Истекшая строка
// удаляется прямо при чтении.
func (r *sessionRepository) GetByID(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session

	query := `SELECT session_id, user_id, username, role, expires_at, created_at FROM sessions WHERE session_id = $1`

	err := r.db.GetContext(ctx, &session, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("ошибка при получении сессии: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = r.Delete(ctx, sessionID)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	query := `DELETE FROM sessions WHERE session_id = $1`

	_, err := r.db.ExecContext(ctx, query, sessionID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении сессии: %w", err)
	}

	return nil
}
