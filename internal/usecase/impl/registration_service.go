package impl

import (
	"context"
	"log/slog"

	"passbook/internal/domain/entity"
	domainerrors "passbook/internal/domain/errors"
	"passbook/internal/domain/repository"
	"passbook/internal/usecase"

	"github.com/pkg/errors"
)

type registrationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: txManager,
		logger:    logger,
	}
}

// RegisterDevice links a device to a pass, creating the device on first contact.
// The whole resolution runs in one transaction so concurrent attempts for the
// same (device, pass) pair cannot create two registrations; the unique
// constraints on devices and registrations are the storage-level backstop.
func (s *registrationService) RegisterDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, serialNumber, pushToken string) (usecase.RegistrationResult, error) {
	var result usecase.RegistrationResult

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		passRepo := repoFactory.NewPassRepository()
		deviceRepo := repoFactory.NewDeviceRepository()
		registrationRepo := repoFactory.NewRegistrationRepository()

		// A client cannot register for a pass the server does not know about.
		pass, err := passRepo.FindPassByTypeAndSerial(ctx, passTypeIdentifier, serialNumber)
		if err != nil {
			if errors.Is(err, repository.ErrPassNotFound) {
				return domainerrors.ErrPassNotFound
			}

			return errors.Wrap(err, "failed to find pass")
		}

		device, err := s.findOrCreateDevice(ctx, deviceRepo, deviceLibraryIdentifier, pushToken)
		if err != nil {
			return err
		}

		// Re-registration by a client that already holds the pass is expected
		// and must be idempotent, not rejected.
		_, err = registrationRepo.FindRegistration(ctx, deviceLibraryIdentifier, passTypeIdentifier, serialNumber)
		if err == nil {
			result = usecase.RegistrationAlreadyExists

			return nil
		}
		if !errors.Is(err, repository.ErrRegistrationNotFound) {
			return errors.Wrap(err, "failed to find registration")
		}

		registration := &entity.Registration{
			DeviceID: device.ID,
			PassID:   pass.ID,
		}
		if err := registrationRepo.CreateRegistration(ctx, registration); err != nil {
			if errors.Is(err, repository.ErrDuplicateRegistration) {
				result = usecase.RegistrationAlreadyExists

				return nil
			}

			return errors.Wrap(err, "failed to create registration")
		}

		result = usecase.RegistrationCreated

		return nil
	})
	if err != nil {
		return 0, err
	}

	return result, nil
}

// findOrCreateDevice resolves the device matching the exact (library
// identifier, push token) pair, creating it when absent. Losing a creation
// race to a concurrent registration attempt is resolved by re-reading.
func (s *registrationService) findOrCreateDevice(ctx context.Context, deviceRepo repository.DeviceRepository, deviceLibraryIdentifier, pushToken string) (*entity.Device, error) {
	device, err := deviceRepo.FindDeviceByLibraryIDAndToken(ctx, deviceLibraryIdentifier, pushToken)
	if err == nil {
		return device, nil
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "failed to find device")
	}

	device = &entity.Device{
		DeviceLibraryIdentifier: deviceLibraryIdentifier,
		PushToken:               pushToken,
	}
	if err := deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			device, err = deviceRepo.FindDeviceByLibraryIDAndToken(ctx, deviceLibraryIdentifier, pushToken)
			if err != nil {
				return nil, errors.Wrap(err, "failed to re-read device after creation race")
			}

			return device, nil
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UnregisterDevice removes the registration linking the device to the pass.
// Only the link is removed; the device row stays.
func (s *registrationService) UnregisterDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, serialNumber string) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		registrationRepo := repoFactory.NewRegistrationRepository()

		registration, err := registrationRepo.FindRegistration(ctx, deviceLibraryIdentifier, passTypeIdentifier, serialNumber)
		if err != nil {
			if errors.Is(err, repository.ErrRegistrationNotFound) {
				return domainerrors.ErrRegistrationNotFound
			}

			return errors.Wrap(err, "failed to find registration")
		}

		if err := registrationRepo.DeleteRegistration(ctx, registration.ID); err != nil {
			return errors.Wrap(err, "failed to delete registration")
		}

		return nil
	})
}
