package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateUserInput is an admin's partial edit of a user record. Each field is
// independently optional. Role is immutable after creation and cannot be
// edited.
type UpdateUserInput struct {
	Name      *string
	Secret    *string
	Latitude  *float64
	Longitude *float64
}

// AccountUsecase exposes admin-only access to arbitrary user records.
type AccountUsecase interface {
	// GetUser retrieves any user record by ID.
	GetUser(ctx context.Context, principal *entity.Principal, userID int64) (*entity.User, error)

	// ListUsers retrieves all user records.
	ListUsers(ctx context.Context, principal *entity.Principal) ([]*entity.User, error)

	// UpdateUser applies a partial update to any user record.
	UpdateUser(ctx context.Context, principal *entity.Principal, userID int64, input *UpdateUserInput) error
}
