package repository

import (
	"context"
	"errors"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a user has no business profile.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository persists business profiles and their bank details.
type BusinessRepository interface {
	// UpsertProfilePic creates the business of a user or updates only its profile picture.
	UpsertProfilePic(ctx context.Context, userID uuid.UUID, profilePic string) (*entity.Business, error)

	// UpsertProfile creates the business of a user or updates its profile fields together.
	UpsertProfile(ctx context.Context, userID uuid.UUID, fields entity.BusinessProfileFields) (*entity.Business, error)

	// FindByUserID retrieves the business of a user together with its bank details.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error)

	// CreateBankDetails appends a bank account to a business.
	CreateBankDetails(ctx context.Context, bank *entity.BankDetails) error
}
