package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/access"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// supplyService implements the SupplyUsecase interface.
type supplyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSupplyService is the constructor for supplyService.
func NewSupplyService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SupplyUsecase {
	return &supplyService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *supplyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestSupply records a SupplyRequest, increments stock, and appends the
// paired ProductUpdate audit entry inside one transaction.
func (srv *supplyService) RequestSupply(ctx context.Context, principal *entity.Principal, input *usecase.RequestSupplyInput) (*entity.SupplyRequest, error) {
	if err := access.Authorize(principal.Role, access.OpPlaceSupplyRequest); err != nil {
		return nil, err
	}
	if input.Units <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("units must be positive")
	}

	var request *entity.SupplyRequest

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		store, err := repos.StoreRepo().FindByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("cannot resupply unknown store")
			}

			return errors.Wrap(err, "failed to resolve store")
		}
		if !store.OwnedBy(principal.UserID) {
			return domainerrors.ErrNotStoreOwner.WrapMessage("supply requests are limited to owned stores")
		}

		req := &entity.SupplyRequest{
			ManagerID:   principal.UserID,
			WarehouseID: input.WarehouseID,
			StoreID:     input.StoreID,
			ProductName: input.ProductName,
			Units:       input.Units,
		}
		if err := repos.AuditRepo().CreateSupplyRequest(ctx, req); err != nil {
			if errors.Is(err, repository.ErrWarehouseNotFound) {
				return domainerrors.ErrWarehouseNotFound.WrapMessage("cannot request supply from unknown warehouse")
			}

			return errors.Wrap(err, "failed to persist supply request")
		}

		if err := repos.ProductRepo().IncrementStock(ctx, input.StoreID, input.ProductName, input.Units); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("replenished product is not carried by this store")
			}

			return errors.Wrap(err, "failed to increment stock")
		}

		update := &entity.ProductUpdate{
			ManagerID:   principal.UserID,
			StoreID:     input.StoreID,
			ProductName: input.ProductName,
		}
		if err := repos.AuditRepo().CreateProductUpdate(ctx, update); err != nil {
			return errors.Wrap(err, "failed to append audit entry")
		}

		request = req

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Supply request rejected",
			slog.Int64("managerID", principal.UserID),
			slog.Int64("storeID", input.StoreID),
			slog.String("product", input.ProductName),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Supply request fulfilled",
		slog.Int64("requestNumber", request.Number),
		slog.Int64("managerID", request.ManagerID),
		slog.Int64("warehouseID", request.WarehouseID),
		slog.Int64("storeID", request.StoreID),
		slog.String("product", request.ProductName),
		slog.Int("units", request.Units),
	)

	return request, nil
}
