package usecase

import (
	"context"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadCertificateInput carries the GST certificate of the caller.
type UploadCertificateInput struct {
	UserID uuid.UUID
	File   *UploadFile
}

// UpdateGSTDetailsInput carries the GST details to verify. Every field is required.
type UpdateGSTDetailsInput struct {
	UserID          uuid.UUID
	TradeName       string
	GSTNumber       string
	GSTType         string
	LegalName       string
	BusinessAddress string
}

// SellerUsecase manages the GST record of a seller.
type SellerUsecase interface {
	UploadCertificate(ctx context.Context, input *UploadCertificateInput) (*entity.SellerGST, error)
	UpdateDetails(ctx context.Context, input *UpdateGSTDetailsInput) (*entity.SellerGST, error)
	GetSellerDetails(ctx context.Context, userID uuid.UUID) (*entity.SellerGST, error)
}
