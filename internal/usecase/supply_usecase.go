package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RequestSupplyInput defines a manager's warehouse replenishment request.
type RequestSupplyInput struct {
	StoreID     int64
	WarehouseID int64
	ProductName string
	Units       int
}

// SupplyUsecase orchestrates manager-initiated warehouse resupply. A
// successful request records the SupplyRequest, increments stock, and appends
// the paired ProductUpdate audit entry as one unit of work.
type SupplyUsecase interface {
	// RequestSupply replenishes a product in a store the principal manages.
	RequestSupply(ctx context.Context, principal *entity.Principal, input *RequestSupplyInput) (*entity.SupplyRequest, error)
}
