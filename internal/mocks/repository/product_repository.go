package mocks

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock for repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Find(ctx context.Context, storeID int64, name string) (*entity.Product, error) {
	args := m.Called(ctx, storeID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, storeID int64, name string, units int) error {
	args := m.Called(ctx, storeID, name, units)

	return args.Error(0)
}

func (m *MockProductRepository) IncrementStock(ctx context.Context, storeID int64, name string, units int) error {
	args := m.Called(ctx, storeID, name, units)

	return args.Error(0)
}

func (m *MockProductRepository) ApplyChange(ctx context.Context, storeID int64, name string, change repository.StockChange) error {
	args := m.Called(ctx, storeID, name, change)

	return args.Error(0)
}
