// Package jwt реализует выпуск и парсинг JWT токенов с идентификатором пользователя в claims.
//
// Maker определяет интерфейс подписанта токенов (Token Signer).
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и парсинга JWT токенов.
//
// Токен несёт единственный пользовательский claim — идентификатор пользователя.
type Maker interface {
	// GenerateToken выпускает подписанный токен для пользователя с заданным UID
	GenerateToken(userUID string) (string, error)
	// ParseToken проверяет подпись и срок действия токена, возвращает *CustomClaims
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
//
// Секретный ключ и TTL задаются конфигурацией один раз при старте процесса.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
