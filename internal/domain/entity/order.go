package entity

import "time"

// Order records a customer purchase. Immutable once created; there is no
// edit or cancellation flow.
type Order struct {
	Number      int64     // Auto-assigned order number.
	CustomerID  int64     // The ordering customer.
	StoreID     int64     // The store the order was placed against.
	ProductName string    // The ordered product within that store.
	Units       int       // Units ordered. Always positive.
	OrderedAt   time.Time // When the order was placed.
}

// OrderSummary is a denormalized order row for reporting, carrying the
// customer name alongside the order fields.
type OrderSummary struct {
	Number       int64
	CustomerName string
	StoreID      int64
	ProductName  string
	Units        int
	OrderedAt    time.Time
}
