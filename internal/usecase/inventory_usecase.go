package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateProductInput is a manager's direct edit of a product's levels. Each
// field is independently optional; only supplied fields are changed.
type UpdateProductInput struct {
	StoreID     int64
	ProductName string
	Units       *int
	Price       *float64
}

// InventoryUsecase exposes the manager-only direct edit of product levels,
// distinct from order-driven decrements. Every edit appends an audit entry.
type InventoryUsecase interface {
	// UpdateProduct applies a partial level update to a product in a store
	// the principal manages and records a ProductUpdate audit entry.
	UpdateProduct(ctx context.Context, principal *entity.Principal, input *UpdateProductInput) error
}
