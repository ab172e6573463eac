package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	"sellerhub/internal/domain/service"
	"sellerhub/internal/usecase"
	"sellerhub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	profilePicKeyPrefix = "business/pic"

	msgSubmitAction     = "Submit action in 0 or 1."
	msgFieldRequired    = "This field is required."
	msgSelectProfilePic = "Select profile picture to upload."
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	storage      service.FileStorage
	logger       *slog.Logger
	now          func() time.Time
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Storage      service.FileStorage
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		storage:      params.Storage,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile upserts the business of the caller: action "1" sets only the picture,
// any other action writes the profile fields together.
func (srv *businessService) UpdateProfile(ctx context.Context, input *usecase.UpdateBusinessProfileInput) (*entity.Business, error) {
	switch strings.TrimSpace(input.Action) {
	case "":
		return nil, domainerrors.NewValidationError(msgSubmitAction, map[string]string{"upload-file": msgSubmitAction})
	case usecase.BusinessActionPicture:
		return srv.updatePicture(ctx, input)
	default:
		business, err := srv.businessRepo.UpsertProfile(ctx, input.UserID, input.Fields)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upsert business profile")
		}
		srv.log(ctx).Info("Business profile updated", slog.Any("userID", input.UserID))

		return business, nil
	}
}

func (srv *businessService) updatePicture(ctx context.Context, input *usecase.UpdateBusinessProfileInput) (*entity.Business, error) {
	if input.ProfilePic == nil || input.ProfilePic.Content == nil {
		return nil, domainerrors.NewValidationError(msgSelectProfilePic, map[string]string{"profile-pic": msgSelectProfilePic})
	}

	key := datedKey(profilePicKeyPrefix, srv.now(), input.UserID.String(), input.ProfilePic.Filename)
	ref, err := srv.storage.Save(ctx, key, input.ProfilePic.ContentType, input.ProfilePic.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store profile picture", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	business, err := srv.businessRepo.UpsertProfilePic(ctx, input.UserID, ref)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert business profile picture")
	}
	srv.log(ctx).Info("Business profile picture updated",
		slog.Any("userID", input.UserID),
		slog.String("size", util.FormatBytes(input.ProfilePic.Size)),
	)

	return business, nil
}

// AddBankDetails appends a bank account. The caller must already have a business.
func (srv *businessService) AddBankDetails(ctx context.Context, input *usecase.AddBankDetailsInput) (*entity.BankDetails, error) {
	business, err := srv.businessRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessProfileRequired
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	bank := &entity.BankDetails{
		BusinessID:    business.ID,
		AccHolderName: strings.TrimSpace(input.AccHolderName),
		AccNumber:     strings.TrimSpace(input.AccNumber),
		IFSC:          strings.ToUpper(strings.TrimSpace(input.IFSC)),
	}
	if err := validateBankDetails(bank); err != nil {
		return nil, err
	}

	if err := srv.businessRepo.CreateBankDetails(ctx, bank); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessProfileRequired
		}

		return nil, errors.Wrap(err, "failed to create bank details")
	}
	srv.log(ctx).Info("Bank details created", slog.Any("userID", input.UserID), slog.Any("businessID", business.ID))

	return bank, nil
}

// bankFieldLimits are the column widths of the bank_details table.
var bankFieldLimits = []struct {
	field string
	max   int
	value func(*entity.BankDetails) string
}{
	{field: "acc-holder-name", max: 255, value: func(b *entity.BankDetails) string { return b.AccHolderName }},
	{field: "acc-number", max: 34, value: func(b *entity.BankDetails) string { return b.AccNumber }},
	{field: "ifsc", max: 11, value: func(b *entity.BankDetails) string { return b.IFSC }},
}

// validateBankDetails reports every missing or oversized field of a bank account.
func validateBankDetails(bank *entity.BankDetails) error {
	fields := make(map[string]string)
	for _, limit := range bankFieldLimits {
		value := limit.value(bank)
		switch {
		case value == "":
			fields[limit.field] = msgFieldRequired
		case utf8.RuneCountInString(value) > limit.max:
			fields[limit.field] = fmt.Sprintf("Ensure this field has no more than %d characters.", limit.max)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(msgEnterAllDetails, fields)
}

// GetBusiness returns the business of the caller with its bank details.
func (srv *businessService) GetBusiness(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business details")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}
