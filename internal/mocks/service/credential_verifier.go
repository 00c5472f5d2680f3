// Package mocks provides hand-written testify mocks for the domain
// service interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialVerifier is a testify mock for service.CredentialVerifier.
type MockCredentialVerifier struct {
	mock.Mock
}

// NewMockCredentialVerifier creates a mock wired to the test's cleanup and
// assertion hooks.
func NewMockCredentialVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialVerifier {
	m := &MockCredentialVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCredentialVerifier) Encode(secret string) (string, error) {
	args := m.Called(secret)

	return args.String(0), args.Error(1)
}

func (m *MockCredentialVerifier) Verify(presented, stored string) bool {
	args := m.Called(presented, stored)

	return args.Bool(0)
}
