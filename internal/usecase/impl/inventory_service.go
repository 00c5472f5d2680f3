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

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(txManager repository.TransactionManager, logger *slog.Logger) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProduct applies a manager's partial level edit and appends the audit
// entry, as one transaction. Unsupplied fields retain their prior value.
func (srv *inventoryService) UpdateProduct(ctx context.Context, principal *entity.Principal, input *usecase.UpdateProductInput) error {
	if err := access.Authorize(principal.Role, access.OpUpdateProduct); err != nil {
		return err
	}

	change := repository.StockChange{Units: input.Units, Price: input.Price}
	if change.IsEmpty() {
		return domainerrors.ErrValidationFailed.WrapMessage("no fields to update")
	}
	if change.Units != nil && *change.Units < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("units must not be negative")
	}
	if change.Price != nil && *change.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		store, err := repos.StoreRepo().FindByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound.WrapMessage("cannot update product of unknown store")
			}

			return errors.Wrap(err, "failed to resolve store")
		}
		if !store.OwnedBy(principal.UserID) {
			return domainerrors.ErrNotStoreOwner.WrapMessage("product edits are limited to owned stores")
		}

		if err := repos.ProductRepo().ApplyChange(ctx, input.StoreID, input.ProductName, change); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("no such product to update")
			}

			return errors.Wrap(err, "failed to apply product change")
		}

		update := &entity.ProductUpdate{
			ManagerID:   principal.UserID,
			StoreID:     input.StoreID,
			ProductName: input.ProductName,
		}
		if err := repos.AuditRepo().CreateProductUpdate(ctx, update); err != nil {
			return errors.Wrap(err, "failed to append audit entry")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Product update rejected",
			slog.Int64("managerID", principal.UserID),
			slog.Int64("storeID", input.StoreID),
			slog.String("product", input.ProductName),
			slog.Any("error", err),
		)

		return err
	}

	srv.log(ctx).Info("Product updated",
		slog.Int64("managerID", principal.UserID),
		slog.Int64("storeID", input.StoreID),
		slog.String("product", input.ProductName),
	)

	return nil
}
