package service

import (
	"context"

	"sellerhub/internal/domain/entity"
)

// OTPMailer generates one-time passwords and delivers them by email.
type OTPMailer interface {
	// GenerateOTP returns a fresh numeric code.
	GenerateOTP() (string, error)

	// SendOTP delivers code to the user, tagged with what it verifies.
	SendOTP(ctx context.Context, user *entity.User, code string, purpose entity.OTPPurpose) error
}
