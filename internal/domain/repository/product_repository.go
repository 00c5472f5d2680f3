package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches a (store, name) key.
var ErrProductNotFound = errors.New("product not found")

// StockChange is a partial update of a product's levels; only non-nil fields
// are applied, the rest retain their prior value.
type StockChange struct {
	Units *int
	Price *float64
}

// IsEmpty reports whether the change carries no fields.
func (c StockChange) IsEmpty() bool {
	return c.Units == nil && c.Price == nil
}

// ProductRepository is the stock ledger: the only way stock counts are read
// and mutated. DecrementStock is the one operation that must be a single
// conditional update applied indivisibly by the database, so that two
// concurrent requests against the same (store, product) key can never both
// succeed when only enough stock for one exists.
type ProductRepository interface {
	// Find retrieves a product by its composite (store, name) key.
	Find(ctx context.Context, storeID int64, name string) (*entity.Product, error)

	// ListByStore retrieves all products carried by a store, ordered by name.
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error)

	// DecrementStock atomically checks stock >= units and decrements in the
	// same statement. Returns ErrProductNotFound for an unknown key, or an
	// *errors.InsufficientStockError carrying the available quantity when the
	// check fails.
	DecrementStock(ctx context.Context, storeID int64, name string, units int) error

	// IncrementStock adds units to a product's stock. No upper bound.
	IncrementStock(ctx context.Context, storeID int64, name string, units int) error

	// ApplyChange applies a partial level update to a product.
	ApplyChange(ctx context.Context, storeID int64, name string, change StockChange) error
}
