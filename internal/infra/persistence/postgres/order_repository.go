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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order and fills in the generated order number and timestamp.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		CustomerID:   order.CustomerID,
		StoreID:      order.StoreID,
		ProductName:  order.ProductName,
		UnitsOrdered: order.Units,
		OrderTime:    time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown customer or store")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.Number = orderM.OrderNumber
	order.OrderedAt = orderM.OrderTime

	return nil
}
