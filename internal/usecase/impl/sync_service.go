package impl

import (
	"context"
	"log/slog"
	"time"

	"passbook/internal/domain/repository"
	"passbook/internal/usecase"

	"github.com/pkg/errors"
)

// ErrNoMatchingPasses is returned when the delta-sync filter leaves nothing to
// report. It is the expected outcome of "nothing changed", not a failure; the
// delivery layer maps it to 204.
var ErrNoMatchingPasses = errors.New("no matching passes")

type syncService struct {
	registrationRepo repository.RegistrationRepository
	logger           *slog.Logger
}

// NewSyncService creates a new delta-sync service instance
func NewSyncService(registrationRepo repository.RegistrationRepository, logger *slog.Logger) usecase.SyncUsecase {
	return &syncService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// RegistrationsForDevice returns the serial numbers this device must re-fetch
// plus the maximum modified timestamp across them, in the wire watermark
// representation.
func (s *syncService) RegistrationsForDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, updatedSince string) (*usecase.SerialNumbersPayload, error) {
	var watermark *time.Time
	if updatedSince != "" {
		parsed, err := parseWatermark(updatedSince)
		if err != nil {
			// An unparseable watermark is treated as absent: the device falls
			// back to a full sync rather than being rejected.
			s.logger.Debug("ignoring malformed passesUpdatedSince",
				slog.String("deviceLibraryIdentifier", deviceLibraryIdentifier),
				slog.String("updatedSince", updatedSince),
			)
		} else {
			watermark = &parsed
		}
	}

	passes, err := s.registrationRepo.FindPassesForDevice(ctx, deviceLibraryIdentifier, passTypeIdentifier, watermark)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find passes for device")
	}

	if len(passes) == 0 {
		return nil, ErrNoMatchingPasses
	}

	serialNumbers := make([]string, 0, len(passes))
	lastUpdated := time.Unix(0, 0)
	for _, pass := range passes {
		serialNumbers = append(serialNumbers, pass.SerialNumber)
		if modified := pass.ModifiedOr(time.Unix(0, 0)); modified.After(lastUpdated) {
			lastUpdated = modified
		}
	}

	return &usecase.SerialNumbersPayload{
		SerialNumbers: serialNumbers,
		LastUpdated:   formatWatermark(lastUpdated),
	}, nil
}
