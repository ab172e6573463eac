// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the verification flags.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the verification flags.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByEmail reports whether the email is already registered.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

// ExistsByContactNumber reports whether the contact number is already registered.
func (repo *userRepository) ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error) {
	return repo.exists(ctx, "contact_number = ?", contactNumber)
}

func (repo *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users")
	}

	return count > 0, nil
}

// Create persists a new user. The verification flags are created separately by CreateDetails.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Details").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedColumn(err, "contact_number") {
				return repository.ErrContactNumberTaken
			}

			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// CreateDetails persists the verification flags of a user.
func (repo *userRepository) CreateDetails(ctx context.Context, details *entity.UserDetails) error {
	detailsM := fromUserDetailsDomain(details)

	if err := repo.db.WithContext(ctx).Create(detailsM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user details")
	}

	details.ID = detailsM.ID
	details.CreatedAt = detailsM.CreatedAt
	details.UpdatedAt = detailsM.UpdatedAt

	return nil
}

// UpdateDetails modifies the verification flags of a user.
func (repo *userRepository) UpdateDetails(ctx context.Context, details *entity.UserDetails) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDetailsModel{}).
		Where("id = ?", details.ID).
		Updates(map[string]any{
			"email_verified":        details.EmailVerified,
			"phone_number_verified": details.PhoneNumberVerified,
			"is_seller":             details.IsSeller,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user details")
	}

	// If no rows were affected, it means the details were not found.
	if result.RowsAffected == 0 {
		return repository.ErrUserDetailsNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		ContactNumber: data.ContactNumber,
		PasswordHash:  data.PasswordHash,
		IsActive:      data.IsActive,
		IsStaff:       data.IsStaff,
		Details:       toUserDetailsDomain(data.Details),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		ContactNumber: data.ContactNumber,
		PasswordHash:  data.PasswordHash,
		IsActive:      data.IsActive,
		IsStaff:       data.IsStaff,
	}
}

// toUserDetailsDomain converts a GORM UserDetailsModel to a domain UserDetails entity.
func toUserDetailsDomain(data *model.UserDetailsModel) *entity.UserDetails {
	if data == nil {
		return nil
	}

	return &entity.UserDetails{
		ID:                  data.ID,
		UserID:              data.UserID,
		EmailVerified:       data.EmailVerified,
		PhoneNumberVerified: data.PhoneNumberVerified,
		IsSeller:            data.IsSeller,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromUserDetailsDomain converts a domain UserDetails entity to a GORM UserDetailsModel.
func fromUserDetailsDomain(data *entity.UserDetails) *model.UserDetailsModel {
	if data == nil {
		return nil
	}

	return &model.UserDetailsModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		EmailVerified:       data.EmailVerified,
		PhoneNumberVerified: data.PhoneNumberVerified,
		IsSeller:            data.IsSeller,
	}
}
