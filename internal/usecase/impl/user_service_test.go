package impl

import (
	"context"
	"testing"

	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	mockRepo "sellerhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUserDetails(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		repoRes *entity.User
		repoErr error
		wantErr error
	}{
		{
			name:    "found",
			repoRes: &entity.User{ID: userID, Name: "Asha", Details: &entity.UserDetails{EmailVerified: true}},
		},
		{
			name:    "missing",
			repoErr: repository.ErrUserNotFound,
			wantErr: domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})
			ctx := context.Background()

			userRepo.EXPECT().FindByID(ctx, userID).Return(tt.repoRes, tt.repoErr)

			user, err := svc.GetUserDetails(ctx, userID)

			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.True(t, user.Details.EmailVerified)
		})
	}
}

func TestUserService_GetUserDetails_RepositoryFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

	user, err := svc.GetUserDetails(ctx, userID)

	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "failed to find user")
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}
