// Package services содержит бизнес-логику премиум-доступа: таблицу тарифов,
// политику срока и активацию премиума после оплаты.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/highschool-prep/internal/lib/sl"
	"github.com/magabrotheeeer/highschool-prep/internal/metrics"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
	"github.com/magabrotheeeer/highschool-prep/internal/storage"
)

// ErrUserNotFound возвращается, когда оплаченный пользователь не найден.
var ErrUserNotFound = errors.New("user not found")

// EntitlementRepository описывает запись премиум-доступа в хранилище.
type EntitlementRepository interface {
	// UpdateEntitlement атомарно выставляет поля премиум-доступа пользователя.
	UpdateEntitlement(ctx context.Context, id string, ent models.Entitlement) error
}

// Service активирует премиум-доступ.
type Service struct {
	repo   EntitlementRepository
	policy DurationPolicy
	log    *slog.Logger
}

// New создаёт Service. nil policy заменяется фиксированной политикой.
func New(repo EntitlementRepository, policy DurationPolicy, log *slog.Logger) *Service {
	if policy == nil {
		policy = FixedDurationPolicy{Months: DefaultFixedMonths}
	}
	return &Service{
		repo:   repo,
		policy: policy,
		log:    log,
	}
}

// DurationFor возвращает срок премиума в месяцах для тарифа.
func (s *Service) DurationFor(tier string) int {
	return s.policy.MonthsFor(tier)
}

// ExpiresAt вычисляет дату окончания премиума, купленного в момент now.
func (s *Service) ExpiresAt(tier string, now time.Time) time.Time {
	return now.AddDate(0, s.DurationFor(tier), 0)
}

// ActivatePremium выставляет isPremium, packageName, purchasedAt и expiresAt
// одной операцией. Если пользователь не найден, событие логируется, учитывается
// в метрике и возвращается ErrUserNotFound.
func (s *Service) ActivatePremium(ctx context.Context, userID, tier string, now time.Time) (models.Entitlement, error) {
	const op = "services.entitlement.ActivatePremium"
	log := s.log.With(slog.String("op", op), sl.UserID(userID), slog.String("package", tier))

	if !IsKnown(tier) {
		log.Warn("activating premium for unknown package")
	}

	ent := models.Entitlement{
		PackageName: tier,
		PurchasedAt: now.UTC(),
		ExpiresAt:   s.ExpiresAt(tier, now).UTC(),
	}

	if err := s.repo.UpdateEntitlement(ctx, userID, ent); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			metrics.RecordUnresolvedActivation()
			log.Warn("premium activation for unresolved user")
			return models.Entitlement{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		log.Error("failed to activate premium", sl.Err(err))
		return models.Entitlement{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordPremiumActivation(tier)
	log.Info("premium activated", slog.Time("expires_at", ent.ExpiresAt))
	return ent, nil
}
