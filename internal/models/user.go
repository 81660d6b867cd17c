// Package models содержит доменные модели пользователя и каталога учебных материалов.
// Структуры используются в бизнес‑логике, при работе с хранилищем и в HTTP-ответах.
package models

import "time"

// DefaultImage аватар, который получает пользователь, не указавший свой.
const DefaultImage = "https://static.vecteezy.com/system/resources/thumbnails/004/511/281/small/default-avatar-photo-placeholder-profile-picture-vector.jpg"

// User представляет зарегистрированного пользователя вместе с премиум-доступом.
type User struct {
	ID           string     // Идентификатор документа (hex ObjectID)
	Name         string     // Имя пользователя
	Email        string     // Электронная почта, естественный ключ
	PasswordHash string     // bcrypt-хэш пароля или uid Google
	Image        string     // URL аватара
	IsPremium    bool       // Активен ли премиум-доступ
	PackageName  string     // Купленный тариф
	PurchasedAt  *time.Time // Дата покупки
	ExpiresAt    *time.Time // Дата окончания премиум-доступа
}

// Profile публичная часть пользователя: всё, кроме хэша пароля.
type Profile struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Image       string     `json:"image"`
	IsPremium   bool       `json:"isPremium"`
	PackageName string     `json:"packageName,omitempty"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// Profile возвращает публичный профиль пользователя.
func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Image:       u.Image,
		IsPremium:   u.IsPremium,
		PackageName: u.PackageName,
		PurchasedAt: u.PurchasedAt,
		ExpiresAt:   u.ExpiresAt,
	}
}

// Entitlement описывает премиум-доступ, который выставляется одной операцией.
type Entitlement struct {
	PackageName string
	PurchasedAt time.Time
	ExpiresAt   time.Time
}
