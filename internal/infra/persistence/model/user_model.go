package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are generated as UUIDv7 before insert.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(500);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	ContactNumber string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_users_contact_number"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	IsActive      bool      `gorm:"not null"`
	IsStaff       bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Details *UserDetailsModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}

// UserDetailsModel mirrors the 'user_details' table. UserID references users.id.
type UserDetailsModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_details_user_id"`
	EmailVerified       bool      `gorm:"not null"`
	PhoneNumberVerified bool      `gorm:"not null"`
	IsSeller            bool      `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDetailsModel) TableName() string {
	return "user_details"
}

// BeforeCreate assigns a time-ordered UUID when none is set.
func (m *UserDetailsModel) BeforeCreate(_ *gorm.DB) error {
	return ensureID(&m.ID)
}

func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
