package postgres

import (
	"context"
	"testing"
	"time"

	"sellerhub/internal/domain/entity"
	"sellerhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db), "asha@example.com", "9876543210")
	repo := NewRefreshTokenRepository(db)

	token := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "hash-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, token))

	found, err := repo.FindRefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "hash-1"))

	_, err = repo.FindRefreshTokenByHash(ctx, "hash-1")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	err = repo.DeleteRefreshTokenByHash(ctx, "hash-1")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_Expired(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db), "asha@example.com", "9876543210")
	repo := NewRefreshTokenRepository(db)

	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: "expired",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := repo.FindRefreshTokenByHash(ctx, "expired")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)
}

func TestRefreshTokenRepository_DuplicateHash(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db), "asha@example.com", "9876543210")
	repo := NewRefreshTokenRepository(db)

	token := func() *entity.RefreshToken {
		return &entity.RefreshToken{UserID: user.ID, TokenHash: "same", ExpiresAt: time.Now().Add(time.Hour)}
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, token()))
	assert.Error(t, repo.CreateRefreshToken(ctx, token()))
}
