package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SellerGSTModel mirrors the 'seller_gsts' table, one row per user.
type SellerGSTModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_seller_gsts_user_id"`
	SellerID        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_seller_gsts_seller_id"`
	Certificate     string    `gorm:"type:varchar(500)"`
	TradeName       string    `gorm:"type:varchar(255)"`
	GSTNumber       string    `gorm:"column:gst_number;type:varchar(50)"`
	GSTType         string    `gorm:"column:gst_type;type:varchar(50)"`
	LegalName       string    `gorm:"type:varchar(255)"`
	BusinessAddress string    `gorm:"type:text"`
	OTP             string    `gorm:"column:otp;type:varchar(10)"`
	IsOTPUsed       bool      `gorm:"column:is_otp_used;not null"`
	GSTVerified     bool      `gorm:"column:gst_verified;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerGSTModel) TableName() string {
	return "seller_gsts"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *SellerGSTModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}
