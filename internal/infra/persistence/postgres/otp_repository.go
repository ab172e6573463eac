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
)

// otpRepository implements the repository.OTPRepository interface using GORM.
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Create persists the OTP record created at registration.
func (repo *otpRepository) Create(ctx context.Context, otp *entity.OTPVerification) error {
	otpM := fromOTPDomain(otp)

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("otp record already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp verification")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt
	otp.UpdatedAt = otpM.UpdatedAt

	return nil
}

// FindByUserID retrieves the OTP record of a user.
func (repo *otpRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.OTPVerification, error) {
	var otpM model.OTPVerificationModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&otpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp verification")
	}

	return toOTPDomain(&otpM), nil
}

// Update modifies an existing OTP record.
func (repo *otpRepository) Update(ctx context.Context, otp *entity.OTPVerification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPVerificationModel{}).
		Where("id = ?", otp.ID).
		Updates(map[string]any{
			"otp":          otp.OTP,
			"is_otp_used":  otp.IsOTPUsed,
			"phone_number": otp.PhoneNumber,
			"email_id":     otp.EmailID,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update otp verification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOTPVerificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOTPDomain(data *model.OTPVerificationModel) *entity.OTPVerification {
	if data == nil {
		return nil
	}

	return &entity.OTPVerification{
		ID:          data.ID,
		UserID:      data.UserID,
		PhoneNumber: data.PhoneNumber,
		EmailID:     data.EmailID,
		OTP:         data.OTP,
		IsOTPUsed:   data.IsOTPUsed,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOTPDomain(data *entity.OTPVerification) *model.OTPVerificationModel {
	if data == nil {
		return nil
	}

	return &model.OTPVerificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		PhoneNumber: data.PhoneNumber,
		EmailID:     data.EmailID,
		OTP:         data.OTP,
		IsOTPUsed:   data.IsOTPUsed,
	}
}
