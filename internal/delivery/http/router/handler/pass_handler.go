package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"passbook/internal/usecase"
	"passbook/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pkpassContentType = "application/vnd.apple.pkpass"

// PassHandlerParams holds dependencies for PassHandler, injected by Fx.
type PassHandlerParams struct {
	fx.In

	PassUC usecase.PassUsecase
	Logger *slog.Logger
}

// PassHandler serves pass payloads and their distribution QR codes
type PassHandler struct {
	passUC usecase.PassUsecase
	logger *slog.Logger
}

// NewPassHandler is the constructor for PassHandler
func NewPassHandler(params PassHandlerParams) *PassHandler {
	return &PassHandler{
		passUC: params.PassUC,
		logger: params.Logger,
	}
}

// GetPass handles GET /v1/passes/:passTypeIdentifier/:serialNumber.
// If-Modified-Since carries integer Unix seconds; a malformed value is
// treated as absent so the device always gets a pass rather than an error.
func (h *PassHandler) GetPass(c echo.Context) error {
	var ifModifiedSince int64
	if header := c.Request().Header.Get("If-Modified-Since"); header != "" {
		parsed, err := strconv.ParseInt(header, 10, 64)
		if err == nil {
			ifModifiedSince = parsed
		}
	}

	bundle, err := h.passUC.LatestPass(
		c.Request().Context(),
		c.Param("passTypeIdentifier"),
		c.Param("serialNumber"),
		ifModifiedSince,
	)
	if err != nil {
		if errors.Is(err, impl.ErrPassNotModified) {
			return c.NoContent(http.StatusNotModified)
		}

		return err
	}

	c.Response().Header().Set("Last-Modified", strconv.FormatInt(bundle.Modified.Unix(), 10))

	return c.Blob(http.StatusOK, pkpassContentType, bundle.Data)
}

// DistributionQR handles GET /v1/passes/:passTypeIdentifier/:serialNumber/qrcode.
// Returns a PNG encoding the pass download URL, for embedding in mails or
// printed material.
func (h *PassHandler) DistributionQR(c echo.Context) error {
	png, err := h.passUC.DistributionQR(
		c.Request().Context(),
		c.Param("passTypeIdentifier"),
		c.Param("serialNumber"),
	)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=pass_qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}
