package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/domain/service"
	"passbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pushService struct {
	registrationRepo repository.RegistrationRepository
	deviceRepo       repository.DeviceRepository
	credentials      service.CredentialProvider
	transports       service.TransportFactory
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	RegistrationRepo repository.RegistrationRepository
	DeviceRepo       repository.DeviceRepository
	Credentials      service.CredentialProvider
	Transports       service.TransportFactory
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewPushService creates a new push fan-out service instance
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	return &pushService{
		registrationRepo: params.RegistrationRepo,
		deviceRepo:       params.DeviceRepo,
		credentials:      params.Credentials,
		transports:       params.Transports,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// NotifyPassHolders broadcasts an empty "content changed" notification to
// every device registered for the pass. Dispatches run concurrently and
// independently; the operation waits for all of them before releasing the
// transient credentials, because releasing early would invalidate in-flight
// deliveries. Each operation gets its own transport instance built from
// freshly provisioned credentials, so concurrent fan-outs for different pass
// types never share delivery configuration.
func (s *pushService) NotifyPassHolders(ctx context.Context, passTypeIdentifier, serialNumber string) (*usecase.BroadcastReport, error) {
	registrations, err := s.registrationRepo.FindRegistrationsForPass(ctx, passTypeIdentifier, serialNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find registrations for pass")
	}

	report := &usecase.BroadcastReport{Attempted: len(registrations)}
	if len(registrations) == 0 {
		s.publishSummary(ctx, passTypeIdentifier, serialNumber, report)

		return report, nil
	}

	creds, cleanup, err := s.credentials.Provision(ctx, passTypeIdentifier)
	if err != nil {
		return nil, domainerrors.ErrPushProvisioningFailed.WithDetails(err.Error())
	}
	defer cleanup()

	transport, err := s.transports.NewTransport(ctx, passTypeIdentifier, creds)
	if err != nil {
		return nil, domainerrors.ErrPushProvisioningFailed.WithDetails(err.Error())
	}
	defer func() {
		if err := transport.Close(); err != nil {
			s.logger.Warn("failed to close push transport",
				slog.String("passTypeIdentifier", passTypeIdentifier),
				slog.Any("error", err),
			)
		}
	}()

	var (
		wg        sync.WaitGroup
		delivered atomic.Int64
		pruned    atomic.Int64
	)

	for _, registration := range registrations {
		if registration.Device == nil {
			continue
		}

		wg.Add(1)
		go func(registration *entity.Registration) {
			defer wg.Done()

			err := transport.Send(ctx, registration.Device.PushToken)
			switch {
			case err == nil:
				delivered.Add(1)
			case errors.Is(err, service.ErrBadDeviceToken):
				pruned.Add(1)
				s.pruneRegistration(ctx, registration)
			default:
				// Transient delivery failures are not retried here and never
				// fail the batch.
				s.logger.Debug("push dispatch failed",
					slog.String("passTypeIdentifier", passTypeIdentifier),
					slog.String("serialNumber", serialNumber),
					slog.Any("error", err),
				)
			}
		}(registration)
	}
	wg.Wait()

	report.Delivered = int(delivered.Load())
	report.Pruned = int(pruned.Load())

	s.publishSummary(ctx, passTypeIdentifier, serialNumber, report)

	return report, nil
}

// pruneRegistration self-heals the registry after a permanent token
// rejection. The device goes first: while its row exists a concurrent
// registration attempt can still re-link it, so removing it first closes that
// window. Both deletions are best-effort; failures are logged for operator
// visibility but never surface as the dispatch's own error.
func (s *pushService) pruneRegistration(ctx context.Context, registration *entity.Registration) {
	if err := s.deviceRepo.DeleteDevice(ctx, registration.DeviceID); err != nil &&
		!errors.Is(err, repository.ErrDeviceNotFound) {
		s.logger.Warn("failed to delete device with rejected token",
			slog.String("deviceID", registration.DeviceID.String()),
			slog.Any("error", err),
		)
	}

	// Deleting the device may already have cascaded to the registration.
	if err := s.registrationRepo.DeleteRegistration(ctx, registration.ID); err != nil &&
		!errors.Is(err, repository.ErrRegistrationNotFound) {
		s.logger.Warn("failed to delete registration with rejected token",
			slog.String("registrationID", registration.ID.String()),
			slog.Any("error", err),
		)
	}
}

// publishSummary emits the fan-out outcome for async consumers. Publishing is
// best-effort; a broadcast that delivered is not failed by a summary that did not.
func (s *pushService) publishSummary(ctx context.Context, passTypeIdentifier, serialNumber string, report *usecase.BroadcastReport) {
	event := &service.BroadcastEvent{
		RequestID:          uuid.NewString(),
		PassTypeIdentifier: passTypeIdentifier,
		SerialNumber:       serialNumber,
		Attempted:          report.Attempted,
		Delivered:          report.Delivered,
		Pruned:             report.Pruned,
	}

	if err := s.publisher.PublishBroadcastEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish broadcast event",
			slog.String("passTypeIdentifier", passTypeIdentifier),
			slog.String("serialNumber", serialNumber),
			slog.Any("error", err),
		)
	}
}

// PushTokens lists the push tokens currently registered for a pass.
func (s *pushService) PushTokens(ctx context.Context, passTypeIdentifier, serialNumber string) ([]string, error) {
	registrations, err := s.registrationRepo.FindRegistrationsForPass(ctx, passTypeIdentifier, serialNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find registrations for pass")
	}

	tokens := make([]string, 0, len(registrations))
	for _, registration := range registrations {
		if registration.Device == nil {
			continue
		}
		tokens = append(tokens, registration.Device.PushToken)
	}

	return tokens, nil
}
