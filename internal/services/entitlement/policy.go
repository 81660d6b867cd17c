package services

import "fmt"

// Названия политик срока для конфига.
const (
	PolicyFixed = "fixed"
	PolicyTier  = "tier"
)

// DefaultFixedMonths срок премиума при фиксированной политике.
const DefaultFixedMonths = 4

// DurationPolicy определяет, на сколько месяцев продлевается премиум при покупке тарифа.
type DurationPolicy interface {
	MonthsFor(tier string) int
}

// FixedDurationPolicy даёт одинаковый срок для любого тарифа.
type FixedDurationPolicy struct {
	Months int
}

// MonthsFor возвращает фиксированный срок.
func (p FixedDurationPolicy) MonthsFor(string) int {
	if p.Months <= 0 {
		return DefaultFixedMonths
	}
	return p.Months
}

// TierDurationPolicy даёт срок, соответствующий тарифу. Для неизвестного
// тарифа используется DefaultFixedMonths.
type TierDurationPolicy struct{}

// MonthsFor возвращает срок тарифа.
func (TierDurationPolicy) MonthsFor(tier string) int {
	if t, ok := tiers[tier]; ok {
		return t.Months
	}
	return DefaultFixedMonths
}

// PolicyByName возвращает политику по названию из конфига.
func PolicyByName(name string) (DurationPolicy, error) {
	switch name {
	case "", PolicyFixed:
		return FixedDurationPolicy{Months: DefaultFixedMonths}, nil
	case PolicyTier:
		return TierDurationPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown duration policy %q", name)
	}
}
