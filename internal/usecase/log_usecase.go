package usecase

import (
	"context"
)

// LogUsecase accepts, lists and purges free-text diagnostic reports
// submitted by devices.
type LogUsecase interface {
	// SubmitLogs stores a batch of device error reports. An empty batch is a
	// bad request.
	SubmitLogs(ctx context.Context, messages []string) error

	// ListLogs returns all stored report messages, oldest first.
	ListLogs(ctx context.Context) ([]string, error)

	// PurgeLogs deletes all stored reports and returns how many were removed.
	PurgeLogs(ctx context.Context) (int64, error)
}
