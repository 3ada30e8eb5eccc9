package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/constructco-site-backend/auth"
	"github.com/rpupo63/constructco-site-backend/database"
	"github.com/rpupo63/constructco-site-backend/models"
)

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, database.Settings{
		URL:      "sqlite://" + filepath.Join(t.TempDir(), "bootstrap.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	profiles := database.New(db).ProfileRepo()

	require.NoError(t, ensureAdmin(ctx, profiles, "owner@example.com", "password123"))
	created, err := profiles.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)
	assert.True(t, auth.CheckPassword(created.PasswordHash, "password123"))

	// running again is a no-op
	require.NoError(t, ensureAdmin(ctx, profiles, "owner@example.com", "password123"))

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, profiles.Add(ctx, &models.Profile{Email: "staff@example.com", PasswordHash: hash}))
	require.NoError(t, ensureAdmin(ctx, profiles, "staff@example.com", "ignored-password"))

	promoted, err := profiles.FindByEmail(ctx, "staff@example.com")
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)
	assert.True(t, auth.CheckPassword(promoted.PasswordHash, "password123"))

	count, err := profiles.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
