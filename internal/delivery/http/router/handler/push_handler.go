package handler

import (
	"log/slog"
	"net/http"

	"passbook/internal/delivery/http/response"
	"passbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	PushUC usecase.PushUsecase
	Logger *slog.Logger
}

// PushHandler exposes the operator-facing broadcast endpoints
type PushHandler struct {
	pushUC usecase.PushUsecase
	logger *slog.Logger
}

// NewPushHandler is the constructor for PushHandler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		pushUC: params.PushUC,
		logger: params.Logger,
	}
}

// Broadcast handles POST /v1/push/:passTypeIdentifier/:serialNumber.
// Fans out an update notification to every registered device and replies
// 204 once the batch has settled.
func (h *PushHandler) Broadcast(c echo.Context) error {
	report, err := h.pushUC.NotifyPassHolders(
		c.Request().Context(),
		c.Param("passTypeIdentifier"),
		c.Param("serialNumber"),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Broadcast completed",
		slog.String("pass_type_identifier", c.Param("passTypeIdentifier")),
		slog.String("serial_number", c.Param("serialNumber")),
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
		slog.Int("pruned", report.Pruned))

	return c.NoContent(http.StatusNoContent)
}

// ListTokens handles GET /v1/push/:passTypeIdentifier/:serialNumber.
// Returns the push tokens currently registered for the pass.
func (h *PushHandler) ListTokens(c echo.Context) error {
	tokens, err := h.pushUC.PushTokens(
		c.Request().Context(),
		c.Param("passTypeIdentifier"),
		c.Param("serialNumber"),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"pushTokens": tokens}, "")
}
