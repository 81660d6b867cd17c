package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

// ProfileClaims описывает данные, хранящиеся в сессионном токене.
type ProfileClaims struct {
	User                 models.Profile `json:"user"` // Снимок публичного профиля
	jwt.RegisteredClaims                // Стандартные claims (sub, iat, exp)
}

// UserID возвращает идентификатор пользователя из токена.
func (c *ProfileClaims) UserID() string {
	if c.User.ID != "" {
		return c.User.ID
	}
	return c.Subject
}

// GenerateToken создает JWT токен с профилем пользователя, подписывая его секретным ключом.
func (j *MakerImpl) GenerateToken(profile models.Profile) (string, error) {
	const op = "jwt.GenerateToken"
	now := j.now()
	claims := ProfileClaims{
		User: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  profile.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if j.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.tokenTTL))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken парсит JWT токен, проверяет подпись, алгоритм и срок действия,
// возвращает ProfileClaims, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*ProfileClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &ProfileClaims{}, func(_ *jwt.Token) (any, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(j.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, ErrExpiredToken)
		}
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*ProfileClaims)
	if !ok || !token.Valid || claims.UserID() == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return claims, nil
}
