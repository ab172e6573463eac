package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is the store profile of a user, one per user.
type Business struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ProfilePic     string // Opaque storage reference.
	Name           string
	StoreName      string
	Address        *BusinessAddress
	EmailAddress   string
	PhoneNumber    string
	ShippingMethod string
	BankDetails    []*BankDetails
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BusinessAddress is the structured address stored as a JSON document.
type BusinessAddress struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country,omitempty"`
}

// BusinessProfileFields are the columns written by a profile field update.
type BusinessProfileFields struct {
	Name           string
	StoreName      string
	Address        *BusinessAddress
	EmailAddress   string
	PhoneNumber    string
	ShippingMethod string
}

// BankDetails is a payout account of a business. Records are appended, never edited.
type BankDetails struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	AccHolderName string
	AccNumber     string
	IFSC          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
