// Package password реализует хеширование и проверку паролей на основе bcrypt.
//
// Соль генерируется bcrypt для каждого хеша отдельно, поэтому одинаковые
// пароли дают разные хеши. Тот же механизм используется для uid внешнего
// провайдера (Google), который хранится вместо пароля.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается, если пароль не соответствует хешу.
var ErrMismatch = errors.New("password does not match hash")

// ErrTooLong возвращается для паролей длиннее MaxLength байт.
var ErrTooLong = errors.New("password is too long")

// MaxLength предельная длина пароля в байтах, которую принимает bcrypt.
const MaxLength = 72

// Hasher хеширует и сверяет пароли с заданной стоимостью bcrypt.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher. Стоимость вне допустимого диапазона bcrypt заменяется на bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrTooLong
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil при совпадении, ErrMismatch при несовпадении и обёрнутую ошибку,
// если хэш повреждён.
func (h *Hasher) Compare(hash, password string) error {
	const op = "password.Compare"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
