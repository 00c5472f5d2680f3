package mocks

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory bundles the repository mocks handed to a
// transaction callback.
type MockRepositoryFactory struct {
	Users    *MockUserRepository
	Stores   *MockStoreRepository
	Products *MockProductRepository
	Orders   *MockOrderRepository
	Audits   *MockAuditRepository
}

// NewMockRepositoryFactory creates a factory with every repository mocked.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	return &MockRepositoryFactory{
		Users:    NewMockUserRepository(t),
		Stores:   NewMockStoreRepository(t),
		Products: NewMockProductRepository(t),
		Orders:   NewMockOrderRepository(t),
		Audits:   NewMockAuditRepository(t),
	}
}

func (f *MockRepositoryFactory) UserRepo() repository.UserRepository       { return f.Users }
func (f *MockRepositoryFactory) StoreRepo() repository.StoreRepository     { return f.Stores }
func (f *MockRepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }
func (f *MockRepositoryFactory) OrderRepo() repository.OrderRepository     { return f.Orders }
func (f *MockRepositoryFactory) AuditRepo() repository.AuditRepository     { return f.Audits }

// StubTransactionManager runs the callback directly against the factory,
// mirroring commit-on-nil and rollback-on-error semantics without a
// database. BeginErr short-circuits the callback entirely; RolledBack
// records whether the last Execute ended in an error.
type StubTransactionManager struct {
	Factory  repository.RepositoryFactory
	BeginErr error

	mu         sync.Mutex
	Calls      int
	RolledBack bool
}

func (s *StubTransactionManager) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()

	if s.BeginErr != nil {
		return s.BeginErr
	}

	err := fn(s.Factory)

	s.mu.Lock()
	s.RolledBack = err != nil
	s.mu.Unlock()

	return err
}
