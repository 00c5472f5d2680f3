// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	StoreHandler     *handler.StoreHandler
	OrderHandler     *handler.OrderHandler
	InventoryHandler *handler.InventoryHandler
	ReportHandler    *handler.ReportHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	storeHandler     *handler.StoreHandler
	orderHandler     *handler.OrderHandler
	inventoryHandler *handler.InventoryHandler
	reportHandler    *handler.ReportHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		storeHandler:     params.StoreHandler,
		orderHandler:     params.OrderHandler,
		inventoryHandler: params.InventoryHandler,
		reportHandler:    params.ReportHandler,
		adminHandler:     params.AdminHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires a valid session token.
	api := e.Group("")
	api.Use(r.authMiddleware.Authenticate)

	// Browsing routes, open to every role
	storesGroup := api.Group("/stores")
	{
		storesGroup.GET("/nearby", r.storeHandler.NearbyStores)
		storesGroup.GET("/:storeID/products", r.storeHandler.StoreProducts)
	}

	// Ordering routes
	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("/recent", r.orderHandler.RecentOrders)
	}

	// Manager routes; the usecases re-check ownership per store.
	managerGroup := api.Group("/stores", r.authMiddleware.RequireRole(entity.RoleManager))
	{
		managerGroup.PATCH("/:storeID/products/:name", r.inventoryHandler.UpdateProduct)
		managerGroup.POST("/:storeID/supply-requests", r.inventoryHandler.RequestSupply)
	}

	// Reporting routes; role scoping happens in the report service.
	reportsGroup := api.Group("/reports")
	{
		reportsGroup.GET("/product-updates", r.reportHandler.RecentProductUpdates)
		reportsGroup.GET("/popular-products", r.reportHandler.PopularProducts)
		reportsGroup.GET("/popular-customers", r.reportHandler.PopularCustomers)
	}

	// Admin routes
	adminGroup := api.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PATCH("/users/:id", r.adminHandler.UpdateUser)
	}
}
