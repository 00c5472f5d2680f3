// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new customer.
// Registration always creates a customer; manager and admin accounts are
// provisioned out of band. Coordinates are optional but must come as a
// pair; omitting them records no location, and proximity-scoped operations
// fail for that user until an admin supplies one.
type RegisterInput struct {
	Name      string
	Secret    string
	Latitude  *float64
	Longitude *float64
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Name   string
	Secret string
}

// LoginOutput returns the session token and the principal it carries.
type LoginOutput struct {
	Token     string
	Principal *entity.Principal
}

// SessionUsecase authenticates users and establishes principals.
type SessionUsecase interface {
	// Register creates a new customer account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a session token. A new login
	// replaces any prior session for the user.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
