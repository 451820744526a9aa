// Package handler contains the echo handlers for the wallet web service.
// Protocol endpoints answer with the exact wire shapes registered devices
// expect; diagnostic endpoints use the shared response envelope.
package handler

import (
	"log/slog"
	"net/http"

	"passbook/internal/delivery/http/response"
	"passbook/internal/usecase"
	"passbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	SyncUC         usecase.SyncUsecase
	Logger         *slog.Logger
}

// RegistrationHandler handles device registration and delta-sync endpoints
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	syncUC         usecase.SyncUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		syncUC:         params.SyncUC,
		logger:         params.Logger,
	}
}

// RegisterRequest is the body a device sends when registering for a pass.
type RegisterRequest struct {
	PushToken string `json:"pushToken" validate:"required"`
}

// RegisterDevice handles POST /v1/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier/:serialNumber.
// Replies 201 on a new registration and 200 when the pair was already linked.
func (h *RegistrationHandler) RegisterDevice(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	result, err := h.registrationUC.RegisterDevice(
		c.Request().Context(),
		c.Param("deviceLibraryIdentifier"),
		c.Param("passTypeIdentifier"),
		c.Param("serialNumber"),
		req.PushToken,
	)
	if err != nil {
		return err
	}

	if result == usecase.RegistrationCreated {
		return c.NoContent(http.StatusCreated)
	}

	return c.NoContent(http.StatusOK)
}

// UnregisterDevice handles DELETE /v1/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier/:serialNumber.
func (h *RegistrationHandler) UnregisterDevice(c echo.Context) error {
	err := h.registrationUC.UnregisterDevice(
		c.Request().Context(),
		c.Param("deviceLibraryIdentifier"),
		c.Param("passTypeIdentifier"),
		c.Param("serialNumber"),
	)
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// GetSerialNumbers handles GET /v1/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier.
// Replies 200 with the serial-number payload or 204 when nothing matches the
// passesUpdatedSince watermark.
func (h *RegistrationHandler) GetSerialNumbers(c echo.Context) error {
	payload, err := h.syncUC.RegistrationsForDevice(
		c.Request().Context(),
		c.Param("deviceLibraryIdentifier"),
		c.Param("passTypeIdentifier"),
		c.QueryParam("passesUpdatedSince"),
	)
	if err != nil {
		if errors.Is(err, impl.ErrNoMatchingPasses) {
			return c.NoContent(http.StatusNoContent)
		}

		return err
	}

	return c.JSON(http.StatusOK, payload)
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
