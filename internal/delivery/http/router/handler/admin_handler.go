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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AdminHandler serves the admin-only user management routes.
type AdminHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UpdateUserRequest represents the request body for an admin's partial user
// edit. Absent fields keep their prior value; role cannot be changed.
type UpdateUserRequest struct {
	Name      *string  `json:"name" validate:"omitempty,max=50"`
	Secret    *string  `json:"secret" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// ListUsers handles the full user listing
func (h *AdminHandler) ListUsers(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	users, err := h.accountUC.ListUsers(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, NewUserView(user))
	}

	return response.Success(c, http.StatusOK, views)
}

// GetUser handles single user retrieval
func (h *AdminHandler) GetUser(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.accountUC.GetUser(c.Request().Context(), principal, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewUserView(user))
}

// UpdateUser handles the admin's partial user edit
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Principal missing from token")
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.UpdateUser(c.Request().Context(), principal, userID, &usecase.UpdateUserInput{
		Name:      req.Name,
		Secret:    req.Secret,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "user updated"})
}
