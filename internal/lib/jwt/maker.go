// Package jwt реализует выпуск и проверку сессионных JWT токенов.
//
// Токен подписывается HS256 и содержит снимок публичного профиля пользователя
// на момент выпуска. Последующие изменения пользователя (например, покупка
// премиума) в токене не отражаются, пока он не будет выпущен заново.
package jwt

import (
	"errors"
	"time"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

var (
	// ErrInvalidToken возвращается для повреждённого, поддельного или истёкшего токена.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken уточняет ErrInvalidToken для истёкших токенов.
	ErrExpiredToken = errors.New("token has expired")
)

// Maker описывает интерфейс для генерации и парсинга сессионных токенов.
type Maker interface {
	// GenerateToken подписывает токен с профилем пользователя.
	GenerateToken(profile models.Profile) (string, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*ProfileClaims, error)
}

// MakerImpl реализует Maker с использованием секретного ключа
// и времени жизни токена (TTL). Нулевой TTL означает бессрочный токен.
type MakerImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
		now:       time.Now,
	}
}
