// Package payment реализует покупку премиум-доступа: создание сессии оплаты
// для авторизованного пользователя и обработку вебхука платёжного шлюза.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/metrics"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
	"github.com/magabrotheeeer/highschool-prep/internal/paymentprovider"
	authservice "github.com/magabrotheeeer/highschool-prep/internal/services/auth"
	entitlement "github.com/magabrotheeeer/highschool-prep/internal/services/entitlement"
)

var (
	// ErrUnknownTier возвращается для тарифа вне таблицы тарифов.
	ErrUnknownTier = errors.New("unknown package")
	// ErrMissingSession возвращается, если покупатель не авторизован.
	ErrMissingSession = errors.New("missing session")
	// ErrInvalidToken возвращается, если сессионный токен не прошёл проверку.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrInvalidSignature возвращается, если подпись вебхука неверна.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Gateway описывает платёжный шлюз.
type Gateway interface {
	// CreateCheckoutSession создаёт сессию оплаты и возвращает URL для редиректа.
	CreateCheckoutSession(ctx context.Context, req paymentprovider.CheckoutRequest) (string, error)
	// ParseWebhook проверяет подпись и разбирает событие.
	ParseWebhook(payload []byte, signature string) (*paymentprovider.Event, error)
}

// SessionVerifier проверяет сессионный токен.
type SessionVerifier interface {
	VerifySession(token string) (*models.Profile, error)
}

// Activator выдаёт премиум-доступ после оплаты.
type Activator interface {
	ActivatePremium(ctx context.Context, userID, tier string, now time.Time) (models.Entitlement, error)
}

// Service оркестрирует покупку премиум-доступа.
type Service struct {
	gateway      Gateway
	sessions     SessionVerifier
	activator    Activator
	clientOrigin string
	now          func() time.Time
	log          *slog.Logger
}

// New создаёт Service. clientOrigin используется для URL возврата из шлюза.
func New(gateway Gateway, sessions SessionVerifier, activator Activator, clientOrigin string, log *slog.Logger) *Service {
	return &Service{
		gateway:      gateway,
		sessions:     sessions,
		activator:    activator,
		clientOrigin: strings.TrimRight(clientOrigin, "/"),
		now:          time.Now,
		log:          log,
	}
}

// CreateCheckout создаёт сессию оплаты тарифа для пользователя из токена.
// Проверки выполняются в порядке: тариф, наличие сессии, валидность токена.
func (s *Service) CreateCheckout(ctx context.Context, tier, sessionToken string) (string, error) {
	const op = "services.payment.CreateCheckout"

	if !entitlement.IsKnown(tier) {
		metrics.RecordCheckout("unknown", metrics.OutcomeFailure)
		return "", fmt.Errorf("%s: %w", op, ErrUnknownTier)
	}
	if sessionToken == "" {
		metrics.RecordCheckout(tier, metrics.OutcomeFailure)
		return "", fmt.Errorf("%s: %w", op, ErrMissingSession)
	}
	profile, err := s.sessions.VerifySession(sessionToken)
	if err != nil {
		metrics.RecordCheckout(tier, metrics.OutcomeFailure)
		if errors.Is(err, authservice.ErrMissingCookie) {
			return "", fmt.Errorf("%s: %w", op, ErrMissingSession)
		}
		return "", fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, paymentprovider.CheckoutRequest{
		UserID:         profile.ID,
		PackageName:    tier,
		Description:    entitlement.DescriptionFor(tier),
		Price:          entitlement.PriceFor(tier),
		SuccessURL:     s.clientOrigin + "/success",
		CancelURL:      s.clientOrigin + "/cancel",
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		metrics.RecordCheckout(tier, metrics.OutcomeError)
		s.log.Error("failed to create checkout session",
			slog.String("op", op), sl.UserID(profile.ID), slog.String("package", tier), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordCheckout(tier, metrics.OutcomeSuccess)
	s.log.Info("checkout session created", slog.String("op", op), sl.UserID(profile.ID), slog.String("package", tier))
	return url, nil
}

// HandleWebhook проверяет событие шлюза и на завершённой оплате активирует премиум.
// Прочие типы событий принимаются и игнорируются. Ошибка активации
// логируется, но не возвращается, чтобы шлюз не повторял доставку.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	const op = "services.payment.HandleWebhook"
	log := s.log.With(slog.String("op", op))

	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, paymentprovider.ErrInvalidSignature) {
			metrics.RecordWebhookEvent("invalid_signature")
			log.Warn("webhook signature verification failed", sl.Err(err))
			return fmt.Errorf("%s: %w", op, ErrInvalidSignature)
		}
		log.Error("failed to parse webhook", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.RecordWebhookEvent(event.Type)
	log = log.With(slog.String("event_id", event.ID), slog.String("event_type", event.Type))
	if event.SessionID != "" {
		log = log.With(slog.String("session_id", event.SessionID))
	}

	switch event.Type {
	case paymentprovider.EventCheckoutCompleted:
		userID, tier := event.UserID(), event.PackageName()
		if _, err := s.activator.ActivatePremium(ctx, userID, tier, s.now()); err != nil {
			log.Warn("premium activation failed", sl.UserID(userID), slog.String("package", tier), sl.Err(err))
			return nil
		}
		log.Info("checkout completed", sl.UserID(userID), slog.String("package", tier))
	case paymentprovider.EventCheckoutExpired:
		log.Info("checkout abandoned", sl.UserID(event.UserID()))
	default:
		log.Debug("ignoring webhook event")
	}
	return nil
}

// CheckUser сообщает, принадлежит ли сессионный токен заявленному пользователю.
func (s *Service) CheckUser(claimedUserID, sessionToken string) bool {
	if claimedUserID == "" || sessionToken == "" {
		return false
	}
	profile, err := s.sessions.VerifySession(sessionToken)
	if err != nil {
		return false
	}
	return profile.ID == claimedUserID
}
