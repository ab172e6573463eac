package repository

import (
	"context"
	"errors"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerGSTNotFound is returned when a user has no GST record.
var ErrSellerGSTNotFound = errors.New("seller gst not found")

// SellerGSTRepository persists the GST record of each seller.
type SellerGSTRepository interface {
	// UpsertCertificate inserts the record or, when the user already has one,
	// replaces only its certificate reference. The stored record is returned.
	UpsertCertificate(ctx context.Context, gst *entity.SellerGST) (*entity.SellerGST, error)

	// FindByUserID retrieves the GST record of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerGST, error)

	// Update modifies an existing GST record.
	Update(ctx context.Context, gst *entity.SellerGST) error
}
