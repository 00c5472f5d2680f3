// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserUpdate is a partial update of a user record; only non-nil fields are
// applied, the rest retain their prior value. Role is immutable and has no
// field here.
type UserUpdate struct {
	Name      *string
	Secret    *string
	Latitude  *float64
	Longitude *float64
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Secret == nil && u.Latitude == nil && u.Longitude == nil
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByName retrieves a single user by their unique login name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// ApplyUpdate applies a partial update to the user with the given ID.
	ApplyUpdate(ctx context.Context, id int64, update UserUpdate) error

	// List retrieves all users, ordered by ID.
	List(ctx context.Context) ([]*entity.User, error)
}
