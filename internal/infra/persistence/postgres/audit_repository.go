package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// CreateProductUpdate appends an audit entry and fills in the generated
// update number and timestamp.
func (repo *auditRepository) CreateProductUpdate(ctx context.Context, update *entity.ProductUpdate) error {
	updateM := &model.ProductUpdateModel{
		ManagerID:   update.ManagerID,
		StoreID:     update.StoreID,
		ProductName: update.ProductName,
		UpdatedOn:   time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(updateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record product update")
	}

	update.Number = updateM.UpdateNumber
	update.UpdatedOn = updateM.UpdatedOn

	return nil
}

// CreateSupplyRequest persists a replenishment request and fills in the
// generated request number.
func (repo *auditRepository) CreateSupplyRequest(ctx context.Context, request *entity.SupplyRequest) error {
	requestM := &model.SupplyRequestModel{
		ManagerID:      request.ManagerID,
		WarehouseID:    request.WarehouseID,
		StoreID:        request.StoreID,
		ProductName:    request.ProductName,
		UnitsRequested: request.Units,
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrWarehouseNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supply request")
	}

	request.Number = requestM.RequestNumber

	return nil
}
