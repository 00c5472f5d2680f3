package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/access"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/geo"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NearbyStores returns the stores within the visibility radius of the
// principal's recorded location, preserving store-ID order.
func (srv *catalogService) NearbyStores(ctx context.Context, principal *entity.Principal) ([]*entity.Store, error) {
	if err := access.Authorize(principal.Role, access.OpBrowseStores); err != nil {
		return nil, err
	}
	if !principal.HasLocation() {
		return nil, domainerrors.ErrLocationUnavailable.WrapMessage("store search requires a recorded location")
	}

	stores, err := srv.storeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	nearby := geo.WithinRadius(*principal.Location, geo.StoreVisibilityRadius, stores)

	srv.log(ctx).Debug("Store search",
		slog.Int64("userID", principal.UserID),
		slog.Int("candidates", len(stores)),
		slog.Int("nearby", len(nearby)),
	)

	return nearby, nil
}

// StoreProducts returns the products carried by a store.
func (srv *catalogService) StoreProducts(ctx context.Context, principal *entity.Principal, storeID int64) ([]*entity.Product, error) {
	if err := access.Authorize(principal.Role, access.OpBrowseProducts); err != nil {
		return nil, err
	}

	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WrapMessage("cannot browse unknown store")
		}

		return nil, errors.Wrap(err, "failed to resolve store")
	}

	products, err := srv.productRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
