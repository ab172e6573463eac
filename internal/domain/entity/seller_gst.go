package entity

import (
	"time"

	"github.com/google/uuid"
)

// SellerGST is the tax registration record of a seller, one per user.
type SellerGST struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SellerID        string // <10 random chars>U<user id>, assigned at first upload.
	Certificate     string // Opaque storage reference of the uploaded certificate.
	TradeName       string
	GSTNumber       string
	GSTType         string
	LegalName       string
	BusinessAddress string
	OTP             string
	IsOTPUsed       bool
	GSTVerified     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// GSTDetails are the fields a seller submits for verification.
type GSTDetails struct {
	TradeName       string
	GSTNumber       string
	GSTType         string
	LegalName       string
	BusinessAddress string
}

// ApplyDetails overwrites the detail fields and arms a fresh verification code.
func (s *SellerGST) ApplyDetails(details GSTDetails, otp string) {
	s.TradeName = details.TradeName
	s.GSTNumber = details.GSTNumber
	s.GSTType = details.GSTType
	s.LegalName = details.LegalName
	s.BusinessAddress = details.BusinessAddress
	s.OTP = otp
	s.IsOTPUsed = false
}

// MatchesOTP reports whether code equals the stored GST OTP.
func (s *SellerGST) MatchesOTP(code string) bool {
	return s.OTP != "" && s.OTP == code
}
