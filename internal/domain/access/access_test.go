package access

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		op      Operation
		allowed bool
	}{
		{name: "customer browses stores", role: entity.RoleCustomer, op: OpBrowseStores, allowed: true},
		{name: "manager browses stores", role: entity.RoleManager, op: OpBrowseStores, allowed: true},
		{name: "admin browses stores", role: entity.RoleAdmin, op: OpBrowseStores, allowed: true},
		{name: "customer places order", role: entity.RoleCustomer, op: OpPlaceOrder, allowed: true},
		{name: "manager cannot place order", role: entity.RoleManager, op: OpPlaceOrder, allowed: false},
		{name: "admin cannot place order", role: entity.RoleAdmin, op: OpPlaceOrder, allowed: false},
		{name: "manager updates product", role: entity.RoleManager, op: OpUpdateProduct, allowed: true},
		{name: "customer cannot update product", role: entity.RoleCustomer, op: OpUpdateProduct, allowed: false},
		{name: "admin cannot update product", role: entity.RoleAdmin, op: OpUpdateProduct, allowed: false},
		{name: "manager places supply request", role: entity.RoleManager, op: OpPlaceSupplyRequest, allowed: true},
		{name: "customer cannot place supply request", role: entity.RoleCustomer, op: OpPlaceSupplyRequest, allowed: false},
		{name: "admin views popular products", role: entity.RoleAdmin, op: OpViewPopularProducts, allowed: true},
		{name: "customer cannot view popular products", role: entity.RoleCustomer, op: OpViewPopularProducts, allowed: false},
		{name: "admin manages users", role: entity.RoleAdmin, op: OpManageUsers, allowed: true},
		{name: "manager cannot manage users", role: entity.RoleManager, op: OpManageUsers, allowed: false},
		{name: "customer views own recent orders", role: entity.RoleCustomer, op: OpViewRecentOrders, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.role, tt.op)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrForbidden)
			}
			assert.Equal(t, tt.allowed, Allowed(tt.role, tt.op))
		})
	}
}

func TestAuthorize_UnknownOperationDenied(t *testing.T) {
	err := Authorize(entity.RoleAdmin, Operation("does_not_exist"))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	err := Authorize(entity.Role("auditor"), OpBrowseStores)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
