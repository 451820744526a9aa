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

type logService struct {
	errorLogRepo repository.ErrorLogRepository
	logger       *slog.Logger
}

// NewLogService creates a new device error report service instance
func NewLogService(errorLogRepo repository.ErrorLogRepository, logger *slog.Logger) usecase.LogUsecase {
	return &logService{
		errorLogRepo: errorLogRepo,
		logger:       logger,
	}
}

// SubmitLogs stores a batch of device error reports. Messages are stored
// verbatim; empty strings inside a non-empty batch are kept, an empty batch
// is rejected.
func (s *logService) SubmitLogs(ctx context.Context, messages []string) error {
	if len(messages) == 0 {
		return domainerrors.ErrEmptyLogSubmission
	}

	logs := make([]*entity.ErrorLog, 0, len(messages))
	for _, message := range messages {
		logs = append(logs, &entity.ErrorLog{Message: message})
	}

	if err := s.errorLogRepo.CreateErrorLogs(ctx, logs); err != nil {
		return errors.Wrap(err, "failed to store error reports")
	}

	// Reports describe client-side failures; surface them to operators too.
	for _, message := range messages {
		s.logger.Warn("device error report", slog.String("message", message))
	}

	return nil
}

// ListLogs returns all stored report messages, oldest first.
func (s *logService) ListLogs(ctx context.Context) ([]string, error) {
	logs, err := s.errorLogRepo.ListErrorLogs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list error reports")
	}

	messages := make([]string, 0, len(logs))
	for _, log := range logs {
		messages = append(messages, log.Message)
	}

	return messages, nil
}

// PurgeLogs deletes all stored reports.
func (s *logService) PurgeLogs(ctx context.Context) (int64, error) {
	removed, err := s.errorLogRepo.PurgeErrorLogs(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge error reports")
	}

	return removed, nil
}
