package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/access"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// recentLimit bounds every report to its five most relevant rows.
const recentLimit = 5

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(reportRepo repository.ReportRepository, logger *slog.Logger) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// scopeFor maps a principal onto the aggregation scope: managers see their
// own stores, admins see everything.
func scopeFor(principal *entity.Principal) repository.ReportScope {
	if principal.Role == entity.RoleManager {
		return repository.ReportScope{ManagerID: principal.UserID}
	}

	return repository.ReportScope{}
}

// RecentOrders returns the five most recent orders the principal may see.
// Customers get their own order history; managers and admins get the scoped
// view with customer names attached.
func (srv *reportService) RecentOrders(ctx context.Context, principal *entity.Principal) ([]*entity.OrderSummary, error) {
	if err := access.Authorize(principal.Role, access.OpViewRecentOrders); err != nil {
		return nil, err
	}

	if principal.Role == entity.RoleCustomer {
		orders, err := srv.reportRepo.RecentOrdersByCustomer(ctx, principal.UserID, recentLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to query recent orders")
		}

		summaries := make([]*entity.OrderSummary, 0, len(orders))
		for _, order := range orders {
			summaries = append(summaries, &entity.OrderSummary{
				Number:       order.Number,
				CustomerName: principal.Name,
				StoreID:      order.StoreID,
				ProductName:  order.ProductName,
				Units:        order.Units,
				OrderedAt:    order.OrderedAt,
			})
		}

		return summaries, nil
	}

	summaries, err := srv.reportRepo.RecentOrders(ctx, scopeFor(principal), recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query recent orders")
	}

	return summaries, nil
}

// RecentProductUpdates returns the five most recent inventory audit entries
// within the principal's scope.
func (srv *reportService) RecentProductUpdates(ctx context.Context, principal *entity.Principal) ([]*entity.ProductUpdate, error) {
	if err := access.Authorize(principal.Role, access.OpViewRecentUpdates); err != nil {
		return nil, err
	}

	updates, err := srv.reportRepo.RecentProductUpdates(ctx, scopeFor(principal), recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query recent product updates")
	}

	return updates, nil
}

// PopularProducts returns the five most-ordered products within the
// principal's scope.
func (srv *reportService) PopularProducts(ctx context.Context, principal *entity.Principal) ([]*entity.PopularProduct, error) {
	if err := access.Authorize(principal.Role, access.OpViewPopularProducts); err != nil {
		return nil, err
	}

	products, err := srv.reportRepo.PopularProducts(ctx, scopeFor(principal), recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query popular products")
	}

	srv.log(ctx).Debug("Popular products report",
		slog.Int64("userID", principal.UserID),
		slog.Int("rows", len(products)),
	)

	return products, nil
}

// PopularCustomers returns the five customers with the most orders within
// the principal's scope.
func (srv *reportService) PopularCustomers(ctx context.Context, principal *entity.Principal) ([]*entity.PopularCustomer, error) {
	if err := access.Authorize(principal.Role, access.OpViewPopularCustomers); err != nil {
		return nil, err
	}

	customers, err := srv.reportRepo.PopularCustomers(ctx, scopeFor(principal), recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query popular customers")
	}

	return customers, nil
}
