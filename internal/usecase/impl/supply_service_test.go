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

type supplyFixture struct {
	factory   *repomocks.MockRepositoryFactory
	txManager *repomocks.StubTransactionManager
	service   usecase.SupplyUsecase
}

func createTestSupplyService(t *testing.T) *supplyFixture {
	factory := repomocks.NewMockRepositoryFactory(t)
	txManager := &repomocks.StubTransactionManager{Factory: factory}

	return &supplyFixture{
		factory:   factory,
		txManager: txManager,
		service:   NewSupplyService(txManager, newDiscardLogger()),
	}
}

func ownedStore(id, managerID int64) *entity.Store {
	return &entity.Store{ID: id, ManagerID: managerID, Location: orb.Point{1, 1}}
}

func TestSupplyService_RequestSupply_Success(t *testing.T) {
	fx := createTestSupplyService(t)
	ctx := context.Background()
	principal := managerPrincipal(5)

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 5), nil)
	fx.factory.Audits.On("CreateSupplyRequest", ctx, mock.MatchedBy(func(r *entity.SupplyRequest) bool {
		return r.ManagerID == 5 && r.WarehouseID == 3 && r.StoreID == 10 &&
			r.ProductName == "widget" && r.Units == 25
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.SupplyRequest).Number = 77
	}).Return(nil)
	fx.factory.Products.On("IncrementStock", ctx, int64(10), "widget", 25).Return(nil)
	fx.factory.Audits.On("CreateProductUpdate", ctx, mock.MatchedBy(func(u *entity.ProductUpdate) bool {
		return u.ManagerID == 5 && u.StoreID == 10 && u.ProductName == "widget"
	})).Return(nil)

	request, err := fx.service.RequestSupply(ctx, principal, &usecase.RequestSupplyInput{
		StoreID:     10,
		WarehouseID: 3,
		ProductName: "widget",
		Units:       25,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(77), request.Number)
	assert.False(t, fx.txManager.RolledBack)
}

func TestSupplyService_RequestSupply_CustomerForbidden(t *testing.T) {
	fx := createTestSupplyService(t)
	principal := customerPrincipal(1, orb.Point{0, 0})

	_, err := fx.service.RequestSupply(context.Background(), principal, &usecase.RequestSupplyInput{
		StoreID:     10,
		WarehouseID: 3,
		ProductName: "widget",
		Units:       25,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Zero(t, fx.txManager.Calls)
}

func TestSupplyService_RequestSupply_NonPositiveUnits(t *testing.T) {
	fx := createTestSupplyService(t)

	_, err := fx.service.RequestSupply(context.Background(), managerPrincipal(5), &usecase.RequestSupplyInput{
		StoreID:     10,
		WarehouseID: 3,
		ProductName: "widget",
		Units:       -2,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSupplyService_RequestSupply_ForeignStore(t *testing.T) {
	fx := createTestSupplyService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 999), nil)

	_, err := fx.service.RequestSupply(ctx, managerPrincipal(5), &usecase.RequestSupplyInput{
		StoreID:     10,
		WarehouseID: 3,
		ProductName: "widget",
		Units:       25,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotStoreOwner)
	assert.True(t, fx.txManager.RolledBack)
}

func TestSupplyService_RequestSupply_UnknownWarehouse(t *testing.T) {
	fx := createTestSupplyService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 5), nil)
	fx.factory.Audits.On("CreateSupplyRequest", ctx, mock.Anything).
		Return(repository.ErrWarehouseNotFound)

	_, err := fx.service.RequestSupply(ctx, managerPrincipal(5), &usecase.RequestSupplyInput{
		StoreID:     10,
		WarehouseID: 404,
		ProductName: "widget",
		Units:       25,
	})

	assert.ErrorIs(t, err, domainerrors.ErrWarehouseNotFound)
	assert.True(t, fx.txManager.RolledBack)
}

func TestSupplyService_RequestSupply_UnknownProductRollsBack(t *testing.T) {
	fx := createTestSupplyService(t)
	ctx := context.Background()

	fx.factory.Stores.On("FindByID", ctx, int64(10)).Return(ownedStore(10, 5), nil)
	fx.factory.Audits.On("CreateSupplyRequest", ctx, mock.Anything).Return(nil)
	fx.factory.Products.On("IncrementStock", ctx, int64(10), "gadget", 25).
		Return(repository.ErrProductNotFound)

	_, err := fx.service.RequestSupply(ctx, managerPrincipal(5), &usecase.RequestSupplyInput{
		StoreID:     10,
		WarehouseID: 3,
		ProductName: "gadget",
		Units:       25,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.True(t, fx.txManager.RolledBack)
}
