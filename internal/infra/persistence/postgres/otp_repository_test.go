package postgres

import (
	"context"
	"testing"

	"sellerhub/internal/domain/entity"
	"sellerhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := createTestUser(t, NewUserRepository(db), "asha@example.com", "+123456789012345")
	repo := NewOTPRepository(db)

	otp := &entity.OTPVerification{
		UserID:      user.ID,
		EmailID:     user.Email,
		PhoneNumber: user.ContactNumber,
		OTP:         "123456",
	}
	require.NoError(t, repo.Create(ctx, otp))
	assert.NotEqual(t, uuid.Nil, otp.ID)

	found, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", found.OTP)
	assert.False(t, found.IsOTPUsed)
	assert.Equal(t, "+123456789012345", found.PhoneNumber)

	found.IsOTPUsed = true
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsOTPUsed)
	assert.Equal(t, "123456", reloaded.OTP)
}

func TestOTPRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewOTPRepository(newTestDB(t))

	_, err := repo.FindByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOTPVerificationNotFound)

	err = repo.Update(ctx, &entity.OTPVerification{ID: uuid.New(), OTP: "1"})
	assert.ErrorIs(t, err, repository.ErrOTPVerificationNotFound)
}
