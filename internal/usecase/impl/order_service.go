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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(txManager repository.TransactionManager, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder runs the order pipeline: role gate, location, proximity, atomic
// stock reservation, order record. The reservation and the order insert share
// one transaction, so a failed insert rolls the decrement back.
func (srv *orderService) PlaceOrder(ctx context.Context, principal *entity.Principal, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := access.Authorize(principal.Role, access.OpPlaceOrder); err != nil {
		return nil, err
	}
	if input.Units <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("units must be positive")
	}
	if !principal.HasLocation() {
		return nil, domainerrors.ErrLocationUnavailable.WrapMessage("ordering requires a recorded location")
	}

	var placed *entity.Order

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		store, err := repos.StoreRepo().FindByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("cannot order from unknown store")
			}

			return errors.Wrap(err, "failed to resolve store")
		}

		if geo.Distance(*principal.Location, store.Location) > geo.StoreVisibilityRadius {
			return domainerrors.ErrStoreTooFar.WrapMessage("store outside visibility radius")
		}

		if err := repos.ProductRepo().DecrementStock(ctx, input.StoreID, input.ProductName, input.Units); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("ordered product is not carried by this store")
			}

			// InsufficientStockError and persistence errors pass through as-is.
			return err
		}

		order := &entity.Order{
			CustomerID:  principal.UserID,
			StoreID:     input.StoreID,
			ProductName: input.ProductName,
			Units:       input.Units,
		}
		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order")
		}

		placed = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Order rejected",
			slog.Int64("customerID", principal.UserID),
			slog.Int64("storeID", input.StoreID),
			slog.String("product", input.ProductName),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderNumber", placed.Number),
		slog.Int64("customerID", placed.CustomerID),
		slog.Int64("storeID", placed.StoreID),
		slog.String("product", placed.ProductName),
		slog.Int("units", placed.Units),
	)

	return placed, nil
}
