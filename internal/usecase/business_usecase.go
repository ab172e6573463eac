package usecase

import (
	"context"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Business profile actions selected by the upload-file flag.
const (
	BusinessActionFields  = "0"
	BusinessActionPicture = "1"
)

// UpdateBusinessProfileInput either replaces the profile picture (Action "1")
// or writes the profile fields (Action "0").
type UpdateBusinessProfileInput struct {
	UserID     uuid.UUID
	Action     string
	ProfilePic *UploadFile
	Fields     entity.BusinessProfileFields
}

// AddBankDetailsInput carries a payout account.
type AddBankDetailsInput struct {
	UserID        uuid.UUID
	AccHolderName string
	AccNumber     string
	IFSC          string
}

// BusinessUsecase manages the business profile and its bank accounts.
type BusinessUsecase interface {
	UpdateProfile(ctx context.Context, input *UpdateBusinessProfileInput) (*entity.Business, error)
	AddBankDetails(ctx context.Context, input *AddBankDetailsInput) (*entity.BankDetails, error)
	GetBusiness(ctx context.Context, userID uuid.UUID) (*entity.Business, error)
}
