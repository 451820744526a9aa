// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"passbook/internal/domain/entity"
)

// ErrorLogRepository defines the interface for device error report persistence.
type ErrorLogRepository interface {
	// CreateErrorLogs persists a batch of error reports.
	CreateErrorLogs(ctx context.Context, logs []*entity.ErrorLog) error

	// ListErrorLogs retrieves all stored error reports, oldest first.
	ListErrorLogs(ctx context.Context) ([]*entity.ErrorLog, error)

	// PurgeErrorLogs deletes all stored error reports and returns how many were removed.
	PurgeErrorLogs(ctx context.Context) (int64, error)
}
