package postgres

import (
	"context"
	"encoding/json"

	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	"sellerhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns written by a profile field update. updated_at is always refreshed.
var businessProfileColumns = []string{
	"name",
	"store_name",
	"address",
	"email_address",
	"phone_number",
	"shipping_method",
	"updated_at",
}

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// UpsertProfilePic creates the business of a user or updates only its profile picture.
func (repo *businessRepository) UpsertProfilePic(ctx context.Context, userID uuid.UUID, profilePic string) (*entity.Business, error) {
	businessM := &model.BusinessModel{
		UserID:     userID,
		ProfilePic: profilePic,
	}

	return repo.upsert(ctx, businessM, []string{"profile_pic", "updated_at"})
}

// UpsertProfile creates the business of a user or updates its profile fields in one statement.
func (repo *businessRepository) UpsertProfile(ctx context.Context, userID uuid.UUID, fields entity.BusinessProfileFields) (*entity.Business, error) {
	address, err := encodeAddress(fields.Address)
	if err != nil {
		return nil, err
	}

	businessM := &model.BusinessModel{
		UserID:         userID,
		Name:           fields.Name,
		StoreName:      fields.StoreName,
		Address:        address,
		EmailAddress:   fields.EmailAddress,
		PhoneNumber:    fields.PhoneNumber,
		ShippingMethod: fields.ShippingMethod,
	}

	return repo.upsert(ctx, businessM, businessProfileColumns)
}

func (repo *businessRepository) upsert(ctx context.Context, businessM *model.BusinessModel, columns []string) (*entity.Business, error) {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(businessM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert business")
	}

	// The conflicting row keeps its own id, so read back what was stored.
	return repo.FindByUserID(ctx, businessM.UserID)
}

// FindByUserID retrieves the business of a user together with its bank details in creation order.
func (repo *businessRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Preload("BankDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("user_id = ?", userID).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// CreateBankDetails appends a bank account to a business.
func (repo *businessRepository) CreateBankDetails(ctx context.Context, bank *entity.BankDetails) error {
	bankM := fromBankDetailsDomain(bank)

	if err := repo.db.WithContext(ctx).Create(bankM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bank details")
	}

	bank.ID = bankM.ID
	bank.CreatedAt = bankM.CreatedAt
	bank.UpdatedAt = bankM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func encodeAddress(address *entity.BusinessAddress) (datatypes.JSON, error) {
	if address == nil {
		return nil, nil
	}

	raw, err := json.Marshal(address)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode business address")
	}

	return datatypes.JSON(raw), nil
}

// decodeAddress returns nil for an empty or unreadable column.
func decodeAddress(raw datatypes.JSON) *entity.BusinessAddress {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var address entity.BusinessAddress
	if err := json.Unmarshal(raw, &address); err != nil {
		return nil
	}

	return &address
}

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	banks := make([]*entity.BankDetails, 0, len(data.BankDetails))
	for _, bankM := range data.BankDetails {
		banks = append(banks, toBankDetailsDomain(bankM))
	}

	return &entity.Business{
		ID:             data.ID,
		UserID:         data.UserID,
		ProfilePic:     data.ProfilePic,
		Name:           data.Name,
		StoreName:      data.StoreName,
		Address:        decodeAddress(data.Address),
		EmailAddress:   data.EmailAddress,
		PhoneNumber:    data.PhoneNumber,
		ShippingMethod: data.ShippingMethod,
		BankDetails:    banks,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toBankDetailsDomain(data *model.BankDetailsModel) *entity.BankDetails {
	if data == nil {
		return nil
	}

	return &entity.BankDetails{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		AccHolderName: data.AccHolderName,
		AccNumber:     data.AccNumber,
		IFSC:          data.IFSC,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromBankDetailsDomain(data *entity.BankDetails) *model.BankDetailsModel {
	if data == nil {
		return nil
	}

	return &model.BankDetailsModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		AccHolderName: data.AccHolderName,
		AccNumber:     data.AccNumber,
		IFSC:          data.IFSC,
	}
}
