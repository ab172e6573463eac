package usecase

import (
	"context"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase exposes the account profile of the caller.
type UserUsecase interface {
	// GetUserDetails returns the user with its verification flags loaded.
	GetUserDetails(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
