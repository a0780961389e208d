package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	got, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = repo.GetByID(ctx, alice.ID+100)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestUserRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	createTestUser(t, db, "alina")
	createTestUser(t, db, "bob")

	// Matches by username prefix, excluding the caller
	results, err := repo.Search(ctx, "ali", alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "alina", results[0].Username)

	// Display name participates too
	results, err = repo.Search(ctx, "bob", alice.ID, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.Search(ctx, "zzz", alice.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
