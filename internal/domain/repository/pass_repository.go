// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"passbook/internal/domain/entity"
	"passbook/internal/errors"
)

// Domain-specific errors for pass persistence.
var (
	// ErrPassNotFound is returned when a pass is not found.
	ErrPassNotFound = errors.New("pass not found")
	// ErrDuplicatePass is returned when trying to create a pass that already exists.
	ErrDuplicatePass = errors.New("pass already exists")
)

// PassRepository defines the interface for pass-related database operations.
// Pass content is owned by the embedding system; this service creates and
// stamps passes on its behalf and reads them for sync and fetch.
type PassRepository interface {
	// CreatePass persists a new pass record.
	CreatePass(ctx context.Context, pass *entity.Pass) error

	// FindPassByTypeAndSerial retrieves a pass by its durable external key.
	FindPassByTypeAndSerial(ctx context.Context, passTypeIdentifier, serialNumber string) (*entity.Pass, error)

	// StampPassModified sets the pass's last-content-change timestamp.
	StampPassModified(ctx context.Context, passTypeIdentifier, serialNumber string, modified time.Time) error

	// DeletePass removes a pass together with its registrations.
	DeletePass(ctx context.Context, passTypeIdentifier, serialNumber string) error
}
