// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name          string
	Email         string
	ContactNumber string
	Password      string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token to exchange for an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput identifies the session to revoke.
type LogoutInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// VerifyOTPInput carries a code and the record it verifies.
// Target "gst" selects the seller GST record; anything else the account email.
type VerifyOTPInput struct {
	UserID uuid.UUID
	Target string
	Code   string
}

// --- Output DTOs ---

// TokenPair is the access/refresh token pair issued at register and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterOutput returns the new account id and its first session.
type RegisterOutput struct {
	UserID uuid.UUID
	Tokens TokenPair
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	UserID uuid.UUID
	Tokens TokenPair
}

// RefreshTokenOutput contains the new access token. The refresh token is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase covers account creation, sessions and OTP verification.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) error
}
