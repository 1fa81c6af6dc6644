package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogplatform/internal/models"
)

// Identity - снимок пользователя, сделанный при входе. Кладется в контекст
// запроса один раз (в middleware) и дальше передается явно параметром,
// никакого глобального состояния.
type Identity struct {
	ID        string
	SessionID string
	Username  string
	Role      models.Role
}

type contextKey string

const identityKey contextKey = "identity"

func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

func IdentityFrom(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*Identity)
	if !ok || ident == nil {
		return nil, false
	}
	return ident, true
}

// CanMutate определяет, может ли пользователь изменять или удалять пост.
// Правило одно и то же для редактирования и удаления: админ или владелец.
// Для создания и чтения не применяется.
func CanMutate(actorRole models.Role, actorID, authorID string) bool {
	if actorRole == models.RoleAdmin {
		return true
	}
	return actorID != "" && actorID == authorID
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionToken подписывает идентификатор сессии в HS256-токен для cookie.
// Сама сессия живет в БД, токен лишь защищает cookie от подделки.
func NewSessionToken(secret, sessionID string, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена сессии: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken проверяет подпись и срок и возвращает идентификатор сессии
func ParseSessionToken(secret, tokenString string) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return "", fmt.Errorf("ошибка парсинга токена сессии: %w", err)
	}

	if !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("недействительный токен сессии")
	}

	return claims.SessionID, nil
}
