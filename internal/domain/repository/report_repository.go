package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReportScope narrows an aggregation query to the stores owned by one
// manager. The zero value means global (admin) scope.
type ReportScope struct {
	ManagerID int64
}

// Global reports whether the scope spans all stores.
func (s ReportScope) Global() bool {
	return s.ManagerID == 0
}

// ReportRepository serves the read-only aggregation queries. Results are
// bounded by the caller's limit and sorted descending by time or count, with
// row identity as the deterministic tiebreaker. These reads may run
// concurrently with mutations and make no multi-row snapshot promise.
type ReportRepository interface {
	// RecentOrdersByCustomer returns a customer's own most recent orders.
	RecentOrdersByCustomer(ctx context.Context, customerID int64, limit int) ([]*entity.Order, error)

	// RecentOrders returns the most recent orders within the scope.
	RecentOrders(ctx context.Context, scope ReportScope, limit int) ([]*entity.OrderSummary, error)

	// RecentProductUpdates returns the most recent audit entries within the scope.
	RecentProductUpdates(ctx context.Context, scope ReportScope, limit int) ([]*entity.ProductUpdate, error)

	// PopularProducts returns the most-ordered products within the scope.
	PopularProducts(ctx context.Context, scope ReportScope, limit int) ([]*entity.PopularProduct, error)

	// PopularCustomers returns the customers with the most orders within the scope.
	PopularCustomers(ctx context.Context, scope ReportScope, limit int) ([]*entity.PopularCustomer, error)
}
