package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Role - закрытое перечисление ролей. Новые роли добавляются здесь,
// все ветвления по роли делаются через switch по этому типу.
type Role string

const (
	RoleUser   Role = "user"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

// ParseRole преобразует строку из формы/БД в Role.
// Пустая строка означает роль по умолчанию.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAuthor, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleUser, nil
	default:
		return "", fmt.Errorf("неизвестная роль: %q", s)
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Post struct {
	PostID     string         `json:"postId" db:"post_id"`
	AuthorID   string         `json:"authorId" db:"author_id"`
	Title      string         `json:"title" db:"title"`
	Content    string         `json:"content" db:"content"`
	Image      string         `json:"image" db:"image"`
	Categories pq.StringArray `json:"categories" db:"categories"`
	Tags       pq.StringArray `json:"tags" db:"tags"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at"`

	// заполняется только в выборках с JOIN users
	AuthorName string `json:"authorName,omitempty" db:"author_name"`
}

// Session - серверная сессия со снимком данных пользователя на момент входа.
// Смена роли в users не видна до повторного входа.
type Session struct {
	SessionID string    `json:"sessionId" db:"session_id"`
	UserID    string    `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Role      Role      `json:"role" db:"role"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
