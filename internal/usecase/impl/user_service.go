package impl

import (
	"context"
	"log/slog"

	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	"sellerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// GetUserDetails returns the caller with its verification flags.
func (srv *userService) GetUserDetails(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("User details requested for missing user", slog.Any("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user details")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
