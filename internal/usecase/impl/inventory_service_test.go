package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	repomocks "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inventoryFixture struct {
	factory   *repomocks.MockRepositoryFactory
	txManager *repomocks.StubTransactionManager
	service   usecase.InventoryUsecase
}

func createTestInventoryService(t *testing.T) *inventoryFixture {
	factory := repomocks.NewMockRepositoryFactory(t)
	txManager := &repomocks.StubTransactionManager{Factory: factory}

	return &inventoryFixture{
		factory:   factory,
		txManager: txManager,
		service:   NewInventoryService(txManager, newDiscardLogger()),
	}
}

func intPtr(v int) *int             { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestInventoryService_UpdateProduct_UnitsOnly(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 5), nil)
	fx.factory.Products.On("ApplyChange", ctx, int64(10), "widget", mock.MatchedBy(func(c repository.StockChange) bool {
		return c.Units != nil && *c.Units == 40 && c.Price == nil
	})).Return(nil)
	fx.factory.Audits.On("CreateProductUpdate", ctx, mock.MatchedBy(func(u *entity.ProductUpdate) bool {
		return u.ManagerID == 5 && u.StoreID == 10 && u.ProductName == "widget"
	})).Return(nil)

	err := fx.service.UpdateProduct(ctx, managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
		Units:       intPtr(40),
	})

	require.NoError(t, err)
	assert.False(t, fx.txManager.RolledBack)
}

func TestInventoryService_UpdateProduct_PriceOnly(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 5), nil)
	fx.factory.Products.On("ApplyChange", ctx, int64(10), "widget", mock.MatchedBy(func(c repository.StockChange) bool {
		return c.Units == nil && c.Price != nil && *c.Price == 9.99
	})).Return(nil)
	fx.factory.Audits.On("CreateProductUpdate", ctx, mock.Anything).Return(nil)

	err := fx.service.UpdateProduct(ctx, managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
		Price:       float64Ptr(9.99),
	})

	assert.NoError(t, err)
}

func TestInventoryService_UpdateProduct_EmptyChange(t *testing.T) {
	fx := createTestInventoryService(t)

	err := fx.service.UpdateProduct(context.Background(), managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fx.txManager.Calls)
}

func TestInventoryService_UpdateProduct_NegativeUnits(t *testing.T) {
	fx := createTestInventoryService(t)

	err := fx.service.UpdateProduct(context.Background(), managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
		Units:       intPtr(-1),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInventoryService_UpdateProduct_NegativePrice(t *testing.T) {
	fx := createTestInventoryService(t)

	err := fx.service.UpdateProduct(context.Background(), managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
		Price:       float64Ptr(-0.5),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestInventoryService_UpdateProduct_CustomerForbidden(t *testing.T) {
	fx := createTestInventoryService(t)
	principal := customerPrincipal(1, orb.Point{0, 0})

	err := fx.service.UpdateProduct(context.Background(), principal, &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
		Units:       intPtr(40),
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestInventoryService_UpdateProduct_ForeignStore(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 999), nil)

	err := fx.service.UpdateProduct(ctx, managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "widget",
		Units:       intPtr(40),
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotStoreOwner)
	assert.True(t, fx.txManager.RolledBack)
}

func TestInventoryService_UpdateProduct_UnknownProduct(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 5), nil)
	fx.factory.Products.On("ApplyChange", ctx, int64(10), "ghost", mock.Anything).
		Return(repository.ErrProductNotFound)

	err := fx.service.UpdateProduct(ctx, managerPrincipal(5), &usecase.UpdateProductInput{
		StoreID:     10,
		ProductName: "ghost",
		Units:       intPtr(40),
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.True(t, fx.txManager.RolledBack)
}
