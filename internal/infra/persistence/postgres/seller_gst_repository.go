package postgres

import (
	"context"

	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	"sellerhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sellerGSTRepository implements the repository.SellerGSTRepository interface using GORM.
type sellerGSTRepository struct {
	db *gorm.DB
}

// NewSellerGSTRepository is the constructor for sellerGSTRepository.
func NewSellerGSTRepository(db *gorm.DB) repository.SellerGSTRepository {
	return &sellerGSTRepository{db: db}
}

// UpsertCertificate inserts the GST record or, on a user_id conflict, replaces only the certificate.
// The existing seller id survives a re-upload.
func (repo *sellerGSTRepository) UpsertCertificate(ctx context.Context, gst *entity.SellerGST) (*entity.SellerGST, error) {
	gstM := fromSellerGSTDomain(gst)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"certificate", "updated_at"}),
		}).
		Create(gstM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrTransactionFailed.WrapMessage("seller id collision")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert seller gst")
	}

	// The conflicting row keeps its own id, so read back what was stored.
	return repo.FindByUserID(ctx, gst.UserID)
}

// FindByUserID retrieves the GST record of a user.
func (repo *sellerGSTRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerGST, error) {
	var gstM model.SellerGSTModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&gstM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerGSTNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller gst")
	}

	return toSellerGSTDomain(&gstM), nil
}

// Update modifies the detail, OTP and verification columns of an existing GST record.
func (repo *sellerGSTRepository) Update(ctx context.Context, gst *entity.SellerGST) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SellerGSTModel{}).
		Where("id = ?", gst.ID).
		Updates(map[string]any{
			"trade_name":       gst.TradeName,
			"gst_number":       gst.GSTNumber,
			"gst_type":         gst.GSTType,
			"legal_name":       gst.LegalName,
			"business_address": gst.BusinessAddress,
			"otp":              gst.OTP,
			"is_otp_used":      gst.IsOTPUsed,
			"gst_verified":     gst.GSTVerified,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update seller gst")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSellerGSTNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSellerGSTDomain(data *model.SellerGSTModel) *entity.SellerGST {
	if data == nil {
		return nil
	}

	return &entity.SellerGST{
		ID:              data.ID,
		UserID:          data.UserID,
		SellerID:        data.SellerID,
		Certificate:     data.Certificate,
		TradeName:       data.TradeName,
		GSTNumber:       data.GSTNumber,
		GSTType:         data.GSTType,
		LegalName:       data.LegalName,
		BusinessAddress: data.BusinessAddress,
		OTP:             data.OTP,
		IsOTPUsed:       data.IsOTPUsed,
		GSTVerified:     data.GSTVerified,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromSellerGSTDomain(data *entity.SellerGST) *model.SellerGSTModel {
	if data == nil {
		return nil
	}

	return &model.SellerGSTModel{
		ID:              data.ID,
		UserID:          data.UserID,
		SellerID:        data.SellerID,
		Certificate:     data.Certificate,
		TradeName:       data.TradeName,
		GSTNumber:       data.GSTNumber,
		GSTType:         data.GSTType,
		LegalName:       data.LegalName,
		BusinessAddress: data.BusinessAddress,
		OTP:             data.OTP,
		IsOTPUsed:       data.IsOTPUsed,
		GSTVerified:     data.GSTVerified,
	}
}
