package mocks

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuditRepository is a testify mock for repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func NewMockAuditRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuditRepository {
	m := &MockAuditRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuditRepository) CreateProductUpdate(ctx context.Context, update *entity.ProductUpdate) error {
	args := m.Called(ctx, update)

	return args.Error(0)
}

func (m *MockAuditRepository) CreateSupplyRequest(ctx context.Context, request *entity.SupplyRequest) error {
	args := m.Called(ctx, request)

	return args.Error(0)
}
