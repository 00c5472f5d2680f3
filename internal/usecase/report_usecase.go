package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReportUsecase serves the read-only "recent/top-5" queries, scoped by the
// principal's role: customers see their own orders, managers their stores,
// admins everything.
type ReportUsecase interface {
	// RecentOrders returns the five most recent orders visible to the principal.
	RecentOrders(ctx context.Context, principal *entity.Principal) ([]*entity.OrderSummary, error)

	// RecentProductUpdates returns the five most recent audit entries visible
	// to the principal. Managers and admins only.
	RecentProductUpdates(ctx context.Context, principal *entity.Principal) ([]*entity.ProductUpdate, error)

	// PopularProducts returns the five most-ordered products in scope.
	// Managers and admins only.
	PopularProducts(ctx context.Context, principal *entity.Principal) ([]*entity.PopularProduct, error)

	// PopularCustomers returns the five customers with the most orders in
	// scope. Managers and admins only.
	PopularCustomers(ctx context.Context, principal *entity.Principal) ([]*entity.PopularCustomer, error)
}
