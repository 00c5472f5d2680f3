package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	SupplyUC    usecase.SupplyUsecase
	Logger      *slog.Logger
}

// InventoryHandler serves the manager-only inventory mutations.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	supplyUC    usecase.SupplyUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		supplyUC:    params.SupplyUC,
		logger:      params.Logger,
	}
}

// UpdateProductRequest represents the request body for a partial product edit.
// Absent fields keep their prior value.
type UpdateProductRequest struct {
	Units *int     `json:"units" validate:"omitempty,gte=0"`
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
}

// RequestSupplyRequest represents the request body for a warehouse resupply.
type RequestSupplyRequest struct {
	WarehouseID int64  `json:"warehouse_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required,max=30"`
	Units       int    `json:"units" validate:"required,gt=0"`
}

// SupplyRequestView is the serializable projection of a supply request.
type SupplyRequestView struct {
	Number      int64  `json:"number"`
	WarehouseID int64  `json:"warehouse_id"`
	StoreID     int64  `json:"store_id"`
	ProductName string `json:"product_name"`
	Units       int    `json:"units"`
}

// UpdateProduct handles the manager's partial product edit
func (h *InventoryHandler) UpdateProduct(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	storeID, err := strconv.ParseInt(c.Param("storeID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	productName := c.Param("name")
	if productName == "" {
		return response.BadRequest(c, "INVALID_ID", "Product name is required")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.inventoryUC.UpdateProduct(c.Request().Context(), principal, &usecase.UpdateProductInput{
		StoreID:     storeID,
		ProductName: productName,
		Units:       req.Units,
		Price:       req.Price,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "product updated"})
}

// RequestSupply handles the manager's warehouse resupply request
func (h *InventoryHandler) RequestSupply(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	storeID, err := strconv.ParseInt(c.Param("storeID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	var req RequestSupplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supply request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.supplyUC.RequestSupply(c.Request().Context(), principal, &usecase.RequestSupplyInput{
		StoreID:     storeID,
		WarehouseID: req.WarehouseID,
		ProductName: req.ProductName,
		Units:       req.Units,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &SupplyRequestView{
		Number:      request.Number,
		WarehouseID: request.WarehouseID,
		StoreID:     request.StoreID,
		ProductName: request.ProductName,
		Units:       request.Units,
	})
}
