package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPPurpose tells which record an OTP verifies.
type OTPPurpose string

const (
	// OTPPurposeEmail verifies the account email, stored on OTPVerification.
	OTPPurposeEmail OTPPurpose = "email"
	// OTPPurposeGST verifies the seller GST details, stored on SellerGST.
	OTPPurposeGST OTPPurpose = "gst"
)

// OTPPurposeFromTarget maps the client supplied target to a purpose.
// Only "gst" selects the GST record; every other value means email.
func OTPPurposeFromTarget(target string) OTPPurpose {
	if target == string(OTPPurposeGST) {
		return OTPPurposeGST
	}

	return OTPPurposeEmail
}

// OTPVerification is the pending email/phone OTP of a user, one per user.
// The code is not rotated after use and has no expiry.
type OTPVerification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PhoneNumber string
	EmailID     string
	OTP         string
	IsOTPUsed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Matches reports whether code equals the stored OTP.
// An already used code still matches.
func (o *OTPVerification) Matches(code string) bool {
	return o.OTP != "" && o.OTP == code
}
