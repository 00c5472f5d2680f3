package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase serves store and product browsing, scoped by proximity.
type CatalogUsecase interface {
	// NearbyStores returns the stores within the visibility radius of the
	// principal's location, in store-ID order. Fails with LocationUnavailable
	// when the principal has no recorded location.
	NearbyStores(ctx context.Context, principal *entity.Principal) ([]*entity.Store, error)

	// StoreProducts returns the products carried by a store.
	StoreProducts(ctx context.Context, principal *entity.Principal, storeID int64) ([]*entity.Product, error)
}
