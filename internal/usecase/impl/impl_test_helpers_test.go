package impl

import (
	"io"
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func customerPrincipal(id int64, at orb.Point) *entity.Principal {
	return &entity.Principal{
		UserID:   id,
		Name:     "test-customer",
		Role:     entity.RoleCustomer,
		Location: &at,
	}
}

func managerPrincipal(id int64) *entity.Principal {
	return &entity.Principal{
		UserID: id,
		Name:   "test-manager",
		Role:   entity.RoleManager,
	}
}

func adminPrincipal(id int64) *entity.Principal {
	return &entity.Principal{
		UserID: id,
		Name:   "test-admin",
		Role:   entity.RoleAdmin,
	}
}
