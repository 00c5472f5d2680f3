package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Find retrieves a product by its composite (store, name) key.
func (repo *productRepository) Find(ctx context.Context, storeID int64, name string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND product_name = ?", storeID, name).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// ListByStore retrieves all products carried by a store, ordered by name.
func (repo *productRepository) ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("product_name").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by store")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// DecrementStock checks and decrements stock in one conditional UPDATE. The
// database applies the statement indivisibly, so two concurrent decrements
// can never both pass the check against the same prior value.
func (repo *productRepository) DecrementStock(ctx context.Context, storeID int64, name string, units int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("store_id = ? AND product_name = ? AND number_of_units >= ?", storeID, name, units).
		Update("number_of_units", gorm.Expr("number_of_units - ?", units))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// No row matched: either the product is unknown or stock ran short.
	product, err := repo.Find(ctx, storeID, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to inspect stock after refused decrement")
	}

	return domainerrors.NewInsufficientStock(product.Units)
}

// IncrementStock adds units to a product's stock. No upper bound.
func (repo *productRepository) IncrementStock(ctx context.Context, storeID int64, name string, units int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("store_id = ? AND product_name = ?", storeID, name).
		Update("number_of_units", gorm.Expr("number_of_units + ?", units))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ApplyChange applies a partial level update to a product.
func (repo *productRepository) ApplyChange(ctx context.Context, storeID int64, name string, change repository.StockChange) error {
	fields := map[string]any{}
	if change.Units != nil {
		fields["number_of_units"] = *change.Units
	}
	if change.Price != nil {
		fields["price_per_unit"] = *change.Price
	}
	if len(fields) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("store_id = ? AND product_name = ?", storeID, name).
		Updates(fields)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		StoreID: data.StoreID,
		Name:    data.ProductName,
		Units:   data.NumberOfUnits,
		Price:   data.PricePerUnit,
	}
}
