package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// StoreHandler serves store and product browsing.
type StoreHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// StoreView is the serializable projection of a store record.
type StoreView struct {
	ID              int64     `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DateEstablished time.Time `json:"date_established"`
}

// ProductView is the serializable projection of a product record.
type ProductView struct {
	StoreID int64   `json:"store_id"`
	Name    string  `json:"name"`
	Units   int     `json:"units"`
	Price   float64 `json:"price"`
}

// NearbyStores handles the proximity-scoped store listing
func (h *StoreHandler) NearbyStores(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	stores, err := h.catalogUC.NearbyStores(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, &StoreView{
			ID:              store.ID,
			Latitude:        store.Location.Lat(),
			Longitude:       store.Location.Lon(),
			DateEstablished: store.DateEstablished,
		})
	}

	return response.Success(c, http.StatusOK, views)
}

// StoreProducts handles the product listing for one store
func (h *StoreHandler) StoreProducts(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	storeID, err := strconv.ParseInt(c.Param("storeID"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store ID")
	}

	products, err := h.catalogUC.StoreProducts(c.Request().Context(), principal, storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products))
}

func toProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, &ProductView{
			StoreID: product.StoreID,
			Name:    product.Name,
			Units:   product.Units,
			Price:   product.Price,
		})
	}

	return views
}
