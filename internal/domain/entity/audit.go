package entity

import "time"

// ProductUpdate is an append-only audit entry recording who changed a
// product's inventory and when, independent of the reason (manual edit or
// supply fulfillment).
type ProductUpdate struct {
	Number      int64     // Auto-assigned update number.
	ManagerID   int64     // The manager who triggered the change.
	StoreID     int64     // The affected store.
	ProductName string    // The affected product.
	UpdatedOn   time.Time // When the change was recorded.
}

// SupplyRequest records a manager-initiated transfer of stock from a
// warehouse into a store's inventory. Paired one-to-one with the
// ProductUpdate entry it produces.
type SupplyRequest struct {
	Number      int64  // Auto-assigned request number.
	ManagerID   int64  // The requesting manager.
	WarehouseID int64  // The warehouse supplying the stock.
	StoreID     int64  // The receiving store.
	ProductName string // The replenished product.
	Units       int    // Units requested. Always positive.
}
