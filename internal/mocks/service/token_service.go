package mocks

import (
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) IssueToken(principal *entity.Principal) (string, error) {
	args := m.Called(principal)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ParseToken(token string) (*entity.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Principal), args.Error(1)
}
