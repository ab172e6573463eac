package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BusinessModel mirrors the 'businesses' table, one row per user. Address is a JSON document.
type BusinessModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_businesses_user_id"`
	ProfilePic     string         `gorm:"type:varchar(500)"`
	Name           string         `gorm:"type:varchar(255)"`
	StoreName      string         `gorm:"type:varchar(255)"`
	Address        datatypes.JSON `gorm:"type:json"`
	EmailAddress   string         `gorm:"type:varchar(255)"`
	PhoneNumber    string         `gorm:"type:varchar(16)"`
	ShippingMethod string         `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	BankDetails []*BankDetailsModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *BusinessModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}

// BankDetailsModel mirrors the 'bank_details' table. Rows are appended, never updated.
type BankDetailsModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AccHolderName string    `gorm:"type:varchar(255);not null"`
	AccNumber     string    `gorm:"type:varchar(34);not null"`
	IFSC          string    `gorm:"column:ifsc;type:varchar(11);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BankDetailsModel) TableName() string {
	return "bank_details"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *BankDetailsModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}
