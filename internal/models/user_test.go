package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_ProfileOmitsPasswordHash(t *testing.T) {
	expires := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	u := &User{
		ID:           "65f1c2a9b3e4d5f6a7b8c9d0",
		Name:         "Ana",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		Image:        DefaultImage,
		IsPremium:    true,
		PackageName:  "4 Months",
		ExpiresAt:    &expires,
	}

	raw, err := json.Marshal(u.Profile())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "65f1c2a9b3e4d5f6a7b8c9d0", got["_id"])
	assert.Equal(t, true, got["isPremium"])
	assert.Equal(t, "4 Months", got["packageName"])
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, got, "password")
	assert.NotContains(t, got, "purchasedAt")
}
