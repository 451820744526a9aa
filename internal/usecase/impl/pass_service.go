package impl

import (
	"context"
	"log/slog"
	"time"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/domain/service"
	"passbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrPassNotModified is returned when the caller's cached copy is still
// current. It is the canonical conditional-GET outcome, not a failure; the
// delivery layer maps it to 304.
var ErrPassNotModified = errors.New("pass not modified")

type passService struct {
	passRepo  repository.PassRepository
	renderers *service.RendererRegistry
	qrcodeSvc service.QRCodeService
	logger    *slog.Logger
}

// PassServiceParams holds dependencies for PassService, injected by Fx.
type PassServiceParams struct {
	fx.In

	PassRepo      repository.PassRepository
	Renderers     *service.RendererRegistry
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewPassService creates a new pass service instance
func NewPassService(params PassServiceParams) usecase.PassUsecase {
	return &passService{
		passRepo:  params.PassRepo,
		renderers: params.Renderers,
		qrcodeSvc: params.QRCodeService,
		logger:    params.Logger,
	}
}

// LatestPass implements the conditional fetch gate. Equal timestamps are
// "not modified": only a pass stamped strictly after ifModifiedSince is
// rendered and returned.
func (s *passService) LatestPass(ctx context.Context, passTypeIdentifier, serialNumber string, ifModifiedSince int64) (*usecase.PassBundle, error) {
	pass, err := s.passRepo.FindPassByTypeAndSerial(ctx, passTypeIdentifier, serialNumber)
	if err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return nil, domainerrors.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass")
	}

	// A pass that was never stamped sorts at the epoch and can never be
	// strictly newer than the caller's threshold.
	modified := pass.ModifiedOr(time.Unix(0, 0))
	if !modified.After(time.Unix(ifModifiedSince, 0)) {
		return nil, ErrPassNotModified
	}

	renderer, err := s.renderers.Lookup(passTypeIdentifier)
	if err != nil {
		return nil, domainerrors.ErrRendererNotRegistered
	}

	data, err := renderer.RenderPass(ctx, pass)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pass")
	}

	return &usecase.PassBundle{
		Data:     data,
		Modified: modified,
	}, nil
}

// CreatePass registers a new pass record for the given external key.
func (s *passService) CreatePass(ctx context.Context, passTypeIdentifier, serialNumber string) (*entity.Pass, error) {
	pass := &entity.Pass{
		PassTypeIdentifier: passTypeIdentifier,
		SerialNumber:       serialNumber,
	}

	if err := s.passRepo.CreatePass(ctx, pass); err != nil {
		return nil, errors.Wrap(err, "failed to create pass")
	}

	return pass, nil
}

// StampPass marks the pass's content as changed at the given instant.
func (s *passService) StampPass(ctx context.Context, passTypeIdentifier, serialNumber string, modified time.Time) error {
	if err := s.passRepo.StampPassModified(ctx, passTypeIdentifier, serialNumber, modified); err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return domainerrors.ErrPassNotFound
		}

		return errors.Wrap(err, "failed to stamp pass")
	}

	return nil
}

// DistributionQR renders a QR code encoding the pass download URL.
func (s *passService) DistributionQR(ctx context.Context, passTypeIdentifier, serialNumber string) ([]byte, error) {
	if _, err := s.passRepo.FindPassByTypeAndSerial(ctx, passTypeIdentifier, serialNumber); err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return nil, domainerrors.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass")
	}

	qrCode, err := s.qrcodeSvc.GeneratePassQR(passTypeIdentifier, serialNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate distribution QR")
	}

	return qrCode, nil
}
