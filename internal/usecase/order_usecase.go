package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput defines a customer's order request.
type PlaceOrderInput struct {
	StoreID     int64
	ProductName string
	Units       int
}

// OrderUsecase orchestrates order placement: proximity and identity checks,
// the atomic stock reservation, and the order record, as one unit of work.
type OrderUsecase interface {
	// PlaceOrder validates proximity and stock, decrements inventory, and
	// persists the order. The decrement and the order insert commit or roll
	// back together; stock is never left reserved without an order.
	PlaceOrder(ctx context.Context, principal *entity.Principal, input *PlaceOrderInput) (*entity.Order, error)
}
