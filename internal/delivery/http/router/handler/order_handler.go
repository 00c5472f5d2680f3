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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC  usecase.OrderUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// OrderHandler serves order placement and the recent-order view.
type OrderHandler struct {
	orderUC  usecase.OrderUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:  params.OrderUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	StoreID     int64  `json:"store_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required,max=30"`
	Units       int    `json:"units" validate:"required,gt=0"`
}

// OrderView is the serializable projection of an order record.
type OrderView struct {
	Number      int64     `json:"number"`
	StoreID     int64     `json:"store_id"`
	ProductName string    `json:"product_name"`
	Units       int       `json:"units"`
	OrderedAt   time.Time `json:"ordered_at"`
}

// OrderSummaryView is the reporting projection carrying the customer name.
type OrderSummaryView struct {
	Number       int64     `json:"number"`
	CustomerName string    `json:"customer_name"`
	StoreID      int64     `json:"store_id"`
	ProductName  string    `json:"product_name"`
	Units        int       `json:"units"`
	OrderedAt    time.Time `json:"ordered_at"`
}

// PlaceOrder handles order placement
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), principal, &usecase.PlaceOrderInput{
		StoreID:     req.StoreID,
		ProductName: req.ProductName,
		Units:       req.Units,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &OrderView{
		Number:      order.Number,
		StoreID:     order.StoreID,
		ProductName: order.ProductName,
		Units:       order.Units,
		OrderedAt:   order.OrderedAt,
	})
}

// RecentOrders handles the role-scoped recent order view
func (h *OrderHandler) RecentOrders(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	summaries, err := h.reportUC.RecentOrders(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*OrderSummaryView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, &OrderSummaryView{
			Number:       summary.Number,
			CustomerName: summary.CustomerName,
			StoreID:      summary.StoreID,
			ProductName:  summary.ProductName,
			Units:        summary.Units,
			OrderedAt:    summary.OrderedAt,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
