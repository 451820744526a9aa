package handler

import (
	"log/slog"
	"net/http"

	"passbook/internal/delivery/http/response"
	"passbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LogHandlerParams holds dependencies for LogHandler, injected by Fx.
type LogHandlerParams struct {
	fx.In

	LogUC  usecase.LogUsecase
	Logger *slog.Logger
}

// LogHandler accepts and manages device error reports
type LogHandler struct {
	logUC  usecase.LogUsecase
	logger *slog.Logger
}

// NewLogHandler is the constructor for LogHandler
func NewLogHandler(params LogHandlerParams) *LogHandler {
	return &LogHandler{
		logUC:  params.LogUC,
		logger: params.Logger,
	}
}

// SubmitLogsRequest is the body a device posts to report client-side errors.
type SubmitLogsRequest struct {
	Logs []string `json:"logs"`
}

// Submit handles POST /v1/log. Devices post error reports here; an empty
// batch is a bad request.
func (h *LogHandler) Submit(c echo.Context) error {
	var req SubmitLogsRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.logUC.SubmitLogs(c.Request().Context(), req.Logs); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

// List handles GET /v1/log. Returns all stored reports, oldest first.
func (h *LogHandler) List(c echo.Context) error {
	messages, err := h.logUC.ListLogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"logs": messages}, "")
}

// Purge handles DELETE /v1/log. Removes all stored reports.
func (h *LogHandler) Purge(c echo.Context) error {
	removed, err := h.logUC.PurgeLogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Error log purged", slog.Int64("removed", removed))

	return c.NoContent(http.StatusNoContent)
}
