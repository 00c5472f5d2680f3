// Package handler contains the echo handlers for the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for registration and login handlers.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for registering a customer.
// Coordinates are optional as a pair; a request without them registers a
// user with no recorded location.
type RegisterRequest struct {
	Name      string   `json:"name" validate:"required,max=50"`
	Secret    string   `json:"secret" validate:"required,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,min=-180,max=180"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Name   string `json:"name" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

// UserView is the serializable projection of a user record. The stored
// secret never appears in a response; coordinates are omitted for users
// without a recorded location.
type UserView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView projects a user entity for serialization.
func NewUserView(user *entity.User) *UserView {
	view := &UserView{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
	if user.HasLocation() {
		lat := user.Location.Lat()
		lng := user.Location.Lon()
		view.Latitude = &lat
		view.Longitude = &lng
	}

	return view
}

// Register handles customer self-registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.sessionUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:      req.Name,
		Secret:    req.Secret,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, NewUserView(user))
}

// Login handles credential verification and token issuance
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Name:   req.Name,
		Secret: req.Secret,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token": out.Token,
		"role":  out.Principal.Role.String(),
	})
}
