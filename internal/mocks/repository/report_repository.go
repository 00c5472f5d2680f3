package mocks

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockReportRepository is a testify mock for repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func NewMockReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportRepository {
	m := &MockReportRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReportRepository) RecentOrdersByCustomer(ctx context.Context, customerID int64, limit int) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockReportRepository) RecentOrders(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.OrderSummary, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderSummary), args.Error(1)
}

func (m *MockReportRepository) RecentProductUpdates(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.ProductUpdate, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ProductUpdate), args.Error(1)
}

func (m *MockReportRepository) PopularProducts(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.PopularProduct, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PopularProduct), args.Error(1)
}

func (m *MockReportRepository) PopularCustomers(ctx context.Context, scope repository.ReportScope, limit int) ([]*entity.PopularCustomer, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PopularCustomer), args.Error(1)
}
