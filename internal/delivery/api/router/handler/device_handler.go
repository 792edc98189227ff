package handler

import (
	"log/slog"
	"net/http"

	"pushgate/internal/delivery/api/middleware"
	"pushgate/internal/delivery/api/response"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	Token      string   `json:"token" validate:"required"`
	Platform   string   `json:"platform" validate:"required,oneof=ios android web"`
	AppVersion string   `json:"app_version"`
	Topics     []string `json:"topics"`
}

// UpdateSubscriptionsRequest represents the request body for replacing topic subscriptions
type UpdateSubscriptionsRequest struct {
	Topics []string `json:"topics" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	deviceInfo := &usecase.DeviceInfo{
		Token:      req.Token,
		Platform:   req.Platform,
		AppVersion: req.AppVersion,
		Topics:     req.Topics,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// UnregisterDevice handles removing a device registration
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_ID", "Device token is required")
	}

	if err := h.deviceUC.UnregisterDevice(c.Request().Context(), userID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device unregistered successfully"})
}

// UpdateSubscriptions handles replacing the topic subscriptions of a device
func (h *DeviceHandler) UpdateSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	token := c.Param("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_ID", "Device token is required")
	}

	var req UpdateSubscriptionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.deviceUC.UpdateSubscriptions(c.Request().Context(), userID, token, req.Topics)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}
