// Package access maps roles to the operations they may invoke. The table is
// the single authorization point, evaluated before every privileged operation.
package access

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// Operation is a closed set of privileged operations the platform exposes.
type Operation string

const (
	OpBrowseStores         Operation = "browse_stores"
	OpBrowseProducts       Operation = "browse_products"
	OpPlaceOrder           Operation = "place_order"
	OpViewRecentOrders     Operation = "view_recent_orders"
	OpUpdateProduct        Operation = "update_product"
	OpViewRecentUpdates    Operation = "view_recent_updates"
	OpViewPopularProducts  Operation = "view_popular_products"
	OpViewPopularCustomers Operation = "view_popular_customers"
	OpPlaceSupplyRequest   Operation = "place_supply_request"
	OpManageUsers          Operation = "manage_users"
)

// table is the static role grant per operation. Store-ownership checks are a
// second level performed by the services; a role listed here may still be
// denied with NotStoreOwner for a store it does not manage.
var table = map[Operation]entity.Roles{
	OpBrowseStores:         {entity.RoleCustomer, entity.RoleManager, entity.RoleAdmin},
	OpBrowseProducts:       {entity.RoleCustomer, entity.RoleManager, entity.RoleAdmin},
	OpPlaceOrder:           {entity.RoleCustomer},
	OpViewRecentOrders:     {entity.RoleCustomer, entity.RoleManager, entity.RoleAdmin},
	OpUpdateProduct:        {entity.RoleManager},
	OpViewRecentUpdates:    {entity.RoleManager, entity.RoleAdmin},
	OpViewPopularProducts:  {entity.RoleManager, entity.RoleAdmin},
	OpViewPopularCustomers: {entity.RoleManager, entity.RoleAdmin},
	OpPlaceSupplyRequest:   {entity.RoleManager},
	OpManageUsers:          {entity.RoleAdmin},
}

// Authorize reports whether the role may invoke the operation. It returns
// ErrForbidden on denial; unknown operations are always denied.
func Authorize(role entity.Role, op Operation) error {
	roles, ok := table[op]
	if !ok || !roles.Contains(role) {
		return domainerrors.ErrForbidden.WrapMessage(string(op))
	}

	return nil
}

// Allowed reports the grant as a boolean, for callers that branch on scope
// rather than fail (e.g. global vs own-store report queries).
func Allowed(role entity.Role, op Operation) bool {
	return Authorize(role, op) == nil
}
