// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"passbook/internal/domain/entity"
	"passbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByLibraryIDAndToken retrieves the device matching both the
	// library identifier and the push token exactly. Registration lookup treats
	// a device as "the same device" only when both match.
	FindDeviceByLibraryIDAndToken(ctx context.Context, deviceLibraryIdentifier, pushToken string) (*entity.Device, error)

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
