package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OTPVerificationModel mirrors the 'otp_verifications' table, one row per user.
type OTPVerificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_otp_verifications_user_id"`
	PhoneNumber string    `gorm:"type:varchar(16)"`
	EmailID     string    `gorm:"type:varchar(255)"`
	OTP         string    `gorm:"column:otp;type:varchar(10)"`
	IsOTPUsed   bool      `gorm:"column:is_otp_used;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OTPVerificationModel) TableName() string {
	return "otp_verifications"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *OTPVerificationModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}
