package paymentprovider

import (
	"errors"
	"fmt"
)

// Типы событий платёжного шлюза, которые обрабатывает сервис.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

// Ключи метаданных сессии оплаты. MetadataPackageName пишется рядом с
// MetadataTier для клиентов, читающих старый ключ.
const (
	MetadataUserID      = "userId"
	MetadataTier        = "tier"
	MetadataPackageName = "packageName"
)

// ErrInvalidSignature возвращается, если подпись вебхука не прошла проверку.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// CheckoutRequest параметры создания сессии оплаты.
type CheckoutRequest struct {
	UserID         string
	PackageName    string
	Description    string
	Price          int64 // Цена в долларах США
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

// Event событие вебхука с метаданными сессии оплаты.
type Event struct {
	ID        string
	Type      string
	SessionID string
	Metadata  map[string]string
}

// UserID возвращает идентификатор пользователя из метаданных.
func (e *Event) UserID() string {
	return e.Metadata[MetadataUserID]
}

// PackageName возвращает тариф из метаданных: ключ tier, а при его
// отсутствии packageName.
func (e *Event) PackageName() string {
	if tier := e.Metadata[MetadataTier]; tier != "" {
		return tier
	}
	return e.Metadata[MetadataPackageName]
}

// GatewayError описывает отказ платёжного шлюза.
type GatewayError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("payment gateway error: %s", e.Message)
	}
	return fmt.Sprintf("payment gateway error %s: %s", e.Code, e.Message)
}
