package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reportRepository implements the repository.ReportRepository interface.
// Reports are read-only aggregations, so every query is routed to a read
// replica when one is configured.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (repo *reportRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// scoped narrows a query over a table carrying store_id to the stores owned
// by the scope's manager. Global scope leaves the query untouched.
func scoped(query *gorm.DB, scope repository.ReportScope, tableAlias string) *gorm.DB {
	if scope.Global() {
		return query
	}

	return query.
		Joins("JOIN stores ON stores.id = "+tableAlias+".store_id").
		Where("stores.manager_id = ?", scope.ManagerID)
}

// RecentOrdersByCustomer returns a customer's own most recent orders.
func (repo *reportRepository) RecentOrdersByCustomer(ctx context.Context, customerID int64, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.read(ctx).
		Where("customer_id = ?", customerID).
		Order("order_time DESC, order_number DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query recent orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, &entity.Order{
			Number:      orderM.OrderNumber,
			CustomerID:  orderM.CustomerID,
			StoreID:     orderM.StoreID,
			ProductName: orderM.ProductName,
			Units:       orderM.UnitsOrdered,
			OrderedAt:   orderM.OrderTime,
		})
	}

	return orders, nil
}

// RecentOrders returns the most recent orders within the scope, with the
// ordering customer's name attached.
func (repo *reportRepository) RecentOrders(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.OrderSummary, error) {
	var rows []struct {
		OrderNumber  int64
		CustomerName string
		StoreID      int64
		ProductName  string
		UnitsOrdered int
		OrderTime    time.Time
	}

	query := repo.read(ctx).
		Table("orders").
		Select("orders.order_number, users.name AS customer_name, orders.store_id, orders.product_name, orders.units_ordered, orders.order_time").
		Joins("JOIN users ON users.id = orders.customer_id")

	if err := scoped(query, scope, "orders").
		Order("orders.order_time DESC, orders.order_number DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query recent orders")
	}

	summaries := make([]*entity.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.OrderSummary{
			Number:       row.OrderNumber,
			CustomerName: row.CustomerName,
			StoreID:      row.StoreID,
			ProductName:  row.ProductName,
			Units:        row.UnitsOrdered,
			OrderedAt:    row.OrderTime,
		})
	}

	return summaries, nil
}

// RecentProductUpdates returns the most recent audit entries within the scope.
func (repo *reportRepository) RecentProductUpdates(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.ProductUpdate, error) {
	var updateModels []*model.ProductUpdateModel

	query := repo.read(ctx).Table("product_updates").Select("product_updates.*")

	if err := scoped(query, scope, "product_updates").
		Order("product_updates.updated_on DESC, product_updates.update_number DESC").
		Limit(limit).
		Find(&updateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query recent product updates")
	}

	updates := make([]*entity.ProductUpdate, 0, len(updateModels))
	for _, updateM := range updateModels {
		updates = append(updates, &entity.ProductUpdate{
			Number:      updateM.UpdateNumber,
			ManagerID:   updateM.ManagerID,
			StoreID:     updateM.StoreID,
			ProductName: updateM.ProductName,
			UpdatedOn:   updateM.UpdatedOn,
		})
	}

	return updates, nil
}

// PopularProducts returns the most-ordered products within the scope,
// counted by order rows rather than units.
func (repo *reportRepository) PopularProducts(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.PopularProduct, error) {
	var rows []struct {
		ProductName string
		OrderCount  int64
	}

	query := repo.read(ctx).
		Table("orders").
		Select("orders.product_name, COUNT(*) AS order_count")

	if err := scoped(query, scope, "orders").
		Group("orders.product_name").
		Order("order_count DESC, orders.product_name").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query popular products")
	}

	products := make([]*entity.PopularProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, &entity.PopularProduct{
			ProductName: row.ProductName,
			OrderCount:  row.OrderCount,
		})
	}

	return products, nil
}

// PopularCustomers returns the customers with the most orders within the scope.
func (repo *reportRepository) PopularCustomers(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.PopularCustomer, error) {
	var rows []struct {
		CustomerID   int64
		CustomerName string
		OrderCount   int64
	}

	query := repo.read(ctx).
		Table("orders").
		Select("orders.customer_id, users.name AS customer_name, COUNT(*) AS order_count").
		Joins("JOIN users ON users.id = orders.customer_id")

	if err := scoped(query, scope, "orders").
		Group("orders.customer_id, users.name").
		Order("order_count DESC, orders.customer_id").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query popular customers")
	}

	customers := make([]*entity.PopularCustomer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, &entity.PopularCustomer{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			OrderCount:   row.OrderCount,
		})
	}

	return customers, nil
}
