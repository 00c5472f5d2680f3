package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrStoreNotFound is returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the operations for store persistence.
type StoreRepository interface {
	// FindByID retrieves a single store by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Store, error)

	// List retrieves all stores, ordered by ID.
	List(ctx context.Context) ([]*entity.Store, error)

	// ListByManager retrieves the stores owned by the given manager.
	ListByManager(ctx context.Context, managerID int64) ([]*entity.Store, error)
}
