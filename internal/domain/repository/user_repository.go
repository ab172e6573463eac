// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sellerhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserDetailsNotFound is returned when the verification flags of a user are missing.
	ErrUserDetailsNotFound = errors.New("user details not found")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already in use")

	// ErrContactNumberTaken is returned when the contact number is already registered.
	ErrContactNumberTaken = errors.New("contact number already in use")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user, with its details, by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user, with its details, by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByContactNumber reports whether the contact number is already registered.
	ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error)

	// Create persists a new user entity to the storage.
	// It returns ErrEmailTaken or ErrContactNumberTaken on a uniqueness violation.
	Create(ctx context.Context, user *entity.User) error

	// CreateDetails persists the verification flags of a user.
	CreateDetails(ctx context.Context, details *entity.UserDetails) error

	// UpdateDetails modifies the verification flags of a user.
	UpdateDetails(ctx context.Context, details *entity.UserDetails) error
}
