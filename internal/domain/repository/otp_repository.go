package repository

import (
	"context"
	"errors"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOTPVerificationNotFound is returned when a user has no pending OTP record.
var ErrOTPVerificationNotFound = errors.New("otp verification not found")

// OTPRepository persists the email/phone OTP record of each user.
type OTPRepository interface {
	// Create persists the OTP record created at registration.
	Create(ctx context.Context, otp *entity.OTPVerification) error

	// FindByUserID retrieves the OTP record of a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.OTPVerification, error)

	// Update modifies an existing OTP record.
	Update(ctx context.Context, otp *entity.OTPVerification) error
}
