// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity of an account. Email is the login identifier.
type User struct {
	ID            uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Name          string       // The user's display name or real name.
	Email         string       // Lower-cased, globally unique.
	ContactNumber string       // Globally unique phone number, digits with an optional leading '+'.
	PasswordHash  string       // bcrypt hash; the plain password is never stored.
	IsActive      bool         // Inactive accounts cannot log in.
	IsStaff       bool         // Staff accounts carry the staff role in their access token.
	Details       *UserDetails // Verification flags. Nil when not loaded.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserDetails holds the verification flags of a user. It is created together with the User.
type UserDetails struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	EmailVerified       bool
	PhoneNumberVerified bool
	IsSeller            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Roles derives the token roles of the user from its flags.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.Details != nil && u.Details.IsSeller {
		roles = append(roles, RoleSeller)
	}
	if u.IsStaff {
		roles = append(roles, RoleStaff)
	}

	return roles
}
