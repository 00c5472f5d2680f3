package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves the read-only top-5 reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// ProductUpdateView is the serializable projection of an audit entry.
type ProductUpdateView struct {
	Number      int64     `json:"number"`
	ManagerID   int64     `json:"manager_id"`
	StoreID     int64     `json:"store_id"`
	ProductName string    `json:"product_name"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// PopularProductView is the serializable projection of a product aggregation row.
type PopularProductView struct {
	ProductName string `json:"product_name"`
	OrderCount  int64  `json:"order_count"`
}

// PopularCustomerView is the serializable projection of a customer aggregation row.
type PopularCustomerView struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	OrderCount   int64  `json:"order_count"`
}

// RecentProductUpdates handles the scoped audit-trail view
func (h *ReportHandler) RecentProductUpdates(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	updates, err := h.reportUC.RecentProductUpdates(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*ProductUpdateView, 0, len(updates))
	for _, update := range updates {
		views = append(views, &ProductUpdateView{
			Number:      update.Number,
			ManagerID:   update.ManagerID,
			StoreID:     update.StoreID,
			ProductName: update.ProductName,
			UpdatedOn:   update.UpdatedOn,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// PopularProducts handles the scoped most-ordered-products view
func (h *ReportHandler) PopularProducts(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	products, err := h.reportUC.PopularProducts(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*PopularProductView, 0, len(products))
	for _, product := range products {
		views = append(views, &PopularProductView{
			ProductName: product.ProductName,
			OrderCount:  product.OrderCount,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// PopularCustomers handles the scoped most-active-customers view
func (h *ReportHandler) PopularCustomers(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	customers, err := h.reportUC.PopularCustomers(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*PopularCustomerView, 0, len(customers))
	for _, customer := range customers {
		views = append(views, &PopularCustomerView{
			CustomerID:   customer.CustomerID,
			CustomerName: customer.CustomerName,
			OrderCount:   customer.OrderCount,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
