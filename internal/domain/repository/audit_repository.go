package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrWarehouseNotFound is returned when a supply request references an
// unknown warehouse.
var ErrWarehouseNotFound = errors.New("warehouse not found")

// AuditRepository appends the inventory audit trail: one ProductUpdate per
// inventory-affecting action, and the SupplyRequest paired with each
// replenishment. Both are append-only.
type AuditRepository interface {
	// CreateProductUpdate appends an audit entry and fills in the generated
	// update number and timestamp.
	CreateProductUpdate(ctx context.Context, update *entity.ProductUpdate) error

	// CreateSupplyRequest persists a replenishment request and fills in the
	// generated request number.
	CreateSupplyRequest(ctx context.Context, request *entity.SupplyRequest) error
}
