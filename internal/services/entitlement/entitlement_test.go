package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/highschool-prep/internal/metrics"
	"github.com/magabrotheeeer/highschool-prep/internal/models"
	"github.com/magabrotheeeer/highschool-prep/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) UpdateEntitlement(ctx context.Context, id string, ent models.Entitlement) error {
	return m.Called(ctx, id, ent).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestPriceAndDescription(t *testing.T) {
	tests := []struct {
		tier      string
		wantPrice int64
		wantKnown bool
	}{
		{tier: "1 Month", wantPrice: 5, wantKnown: true},
		{tier: "4 Months", wantPrice: 10, wantKnown: true},
		{tier: "1 Year", wantPrice: 15, wantKnown: true},
		{tier: "2 Years", wantPrice: 0, wantKnown: false},
		{tier: "", wantPrice: 0, wantKnown: false},
		{tier: "1 month", wantPrice: 0, wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			assert.Equal(t, tt.wantPrice, PriceFor(tt.tier))
			assert.Equal(t, tt.wantKnown, IsKnown(tt.tier))
			if tt.wantKnown {
				assert.NotEmpty(t, DescriptionFor(tt.tier))
			} else {
				assert.Empty(t, DescriptionFor(tt.tier))
			}
		})
	}
}

func TestDurationPolicies(t *testing.T) {
	fixed, err := PolicyByName(PolicyFixed)
	require.NoError(t, err)
	tier, err := PolicyByName(PolicyTier)
	require.NoError(t, err)
	def, err := PolicyByName("")
	require.NoError(t, err)

	for _, name := range []string{TierOneMonth, TierFourMonths, TierOneYear, "unknown"} {
		assert.Equal(t, 4, fixed.MonthsFor(name), name)
		assert.Equal(t, 4, def.MonthsFor(name), name)
	}

	assert.Equal(t, 1, tier.MonthsFor(TierOneMonth))
	assert.Equal(t, 4, tier.MonthsFor(TierFourMonths))
	assert.Equal(t, 12, tier.MonthsFor(TierOneYear))
	assert.Equal(t, 4, tier.MonthsFor("unknown"))

	assert.Equal(t, 4, FixedDurationPolicy{}.MonthsFor(TierOneYear))

	_, err = PolicyByName("weekly")
	assert.Error(t, err)
}

func TestService_ActivatePremium(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	userID := "65f1c2a9b3e4d5f6a7b8c9d0"

	tests := []struct {
		name        string
		policy      DurationPolicy
		tier        string
		setupMocks  func(r *RepoMock)
		wantExpires time.Time
		wantErr     error
	}{
		{
			name:        "fixed policy four months tier",
			policy:      FixedDurationPolicy{Months: DefaultFixedMonths},
			tier:        TierFourMonths,
			wantExpires: now.AddDate(0, 4, 0),
		},
		{
			name:        "fixed policy ignores one month tier",
			policy:      FixedDurationPolicy{Months: DefaultFixedMonths},
			tier:        TierOneMonth,
			wantExpires: now.AddDate(0, 4, 0),
		},
		{
			name:        "fixed policy ignores one year tier",
			policy:      nil,
			tier:        TierOneYear,
			wantExpires: now.AddDate(0, 4, 0),
		},
		{
			name:        "tier policy one year",
			policy:      TierDurationPolicy{},
			tier:        TierOneYear,
			wantExpires: now.AddDate(1, 0, 0),
		},
		{
			name:        "tier policy one month",
			policy:      TierDurationPolicy{},
			tier:        TierOneMonth,
			wantExpires: now.AddDate(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			want := models.Entitlement{PackageName: tt.tier, PurchasedAt: now, ExpiresAt: tt.wantExpires}
			repo.On("UpdateEntitlement", mock.Anything, userID, want).Return(nil).Once()

			svc := New(repo, tt.policy, newNoopLogger())
			got, err := svc.ActivatePremium(context.Background(), userID, tt.tier, now)

			require.NoError(t, err)
			assert.Equal(t, want, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ActivatePremium_Errors(t *testing.T) {
	now := time.Now()

	t.Run("unresolved user is counted", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateEntitlement", mock.Anything, "missing", mock.Anything).
			Return(fmt.Errorf("storage: %w", storage.ErrUserNotFound)).Once()

		before := testutil.ToFloat64(metrics.PremiumActivationUnresolvedTotal)
		svc := New(repo, nil, newNoopLogger())
		_, err := svc.ActivatePremium(context.Background(), "missing", TierOneMonth, now)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.PremiumActivationUnresolvedTotal))
		repo.AssertExpectations(t)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateEntitlement", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection reset")).Once()

		svc := New(repo, nil, newNoopLogger())
		_, err := svc.ActivatePremium(context.Background(), "id", TierOneMonth, now)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
