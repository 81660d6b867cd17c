package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/highschool-prep/internal/models"
)

func TestUsersRepository(t *testing.T) {
	s := setupTestStorage(t)
	repo := NewUsersRepository(s)
	ctx := context.Background()

	t.Run("create applies defaults", func(t *testing.T) {
		user, err := repo.Create(ctx, models.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"})
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, models.DefaultImage, user.Image)
		assert.False(t, user.IsPremium)
		assert.Nil(t, user.ExpiresAt)

		found, err := repo.FindByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "hash", found.PasswordHash)

		byID, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ana@x.com", byID.Email)
	})

	t.Run("custom image kept", func(t *testing.T) {
		user, err := repo.Create(ctx, models.User{Name: "Bo", Email: "bo@x.com", PasswordHash: "h", Image: "https://img/bo.png"})
		require.NoError(t, err)
		assert.Equal(t, "https://img/bo.png", user.Image)
	})

	t.Run("duplicate email rejected by index", func(t *testing.T) {
		_, err := repo.Create(ctx, models.User{Name: "Ana 2", Email: "ana@x.com", PasswordHash: "other"})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("concurrent duplicate registration creates one user", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created int
		)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Create(ctx, models.User{Name: "Race", Email: "race@x.com", PasswordHash: "h"}); err == nil {
					mu.Lock()
					created++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, created)
	})

	t.Run("missing users", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.FindByID(ctx, bson.NewObjectID().Hex())
		assert.ErrorIs(t, err, ErrUserNotFound)

		_, err = repo.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("update entitlement sets all fields", func(t *testing.T) {
		user, err := repo.Create(ctx, models.User{Name: "Cy", Email: "cy@x.com", PasswordHash: "h"})
		require.NoError(t, err)

		purchased := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		ent := models.Entitlement{
			PackageName: "1 Year",
			PurchasedAt: purchased,
			ExpiresAt:   purchased.AddDate(0, 4, 0),
		}
		require.NoError(t, repo.UpdateEntitlement(ctx, user.ID, ent))

		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, got.IsPremium)
		assert.Equal(t, "1 Year", got.PackageName)
		require.NotNil(t, got.PurchasedAt)
		require.NotNil(t, got.ExpiresAt)
		assert.True(t, purchased.Equal(*got.PurchasedAt))
		assert.True(t, purchased.AddDate(0, 4, 0).Equal(*got.ExpiresAt))
		assert.Equal(t, "h", got.PasswordHash)
	})

	t.Run("update entitlement for unknown id", func(t *testing.T) {
		ent := models.Entitlement{PackageName: "1 Month", PurchasedAt: time.Now(), ExpiresAt: time.Now()}
		assert.ErrorIs(t, repo.UpdateEntitlement(ctx, bson.NewObjectID().Hex(), ent), ErrUserNotFound)
		assert.ErrorIs(t, repo.UpdateEntitlement(ctx, "garbage", ent), ErrUserNotFound)
	})
}
