package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository persists order records. Orders are append-only.
type OrderRepository interface {
	// Create persists a new order and fills in the generated order number
	// and timestamp.
	Create(ctx context.Context, order *entity.Order) error
}
