// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"passbook/internal/domain/entity"
	"passbook/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when a registration is not found.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrDuplicateRegistration is returned when a (device, pass) pair is already registered.
	ErrDuplicateRegistration = errors.New("registration already exists")
)

// RegistrationRepository defines the interface for registration-related
// database operations. Registrations are the three-way join surface of the
// sync protocol, so most lookups address them through device and pass keys
// rather than primary IDs.
type RegistrationRepository interface {
	// CreateRegistration persists a new (device, pass) link. Returns
	// ErrDuplicateRegistration when the pair is already linked; the unique
	// constraint on (device_id, pass_id) is the atomicity backstop for
	// concurrent registration attempts.
	CreateRegistration(ctx context.Context, registration *entity.Registration) error

	// FindRegistration locates the registration joining the identified device
	// and the identified pass, if any.
	FindRegistration(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, serialNumber string) (*entity.Registration, error)

	// FindRegistrationsForPass retrieves every registration for one exact pass,
	// with each registration's Device eagerly materialized for dispatch.
	FindRegistrationsForPass(ctx context.Context, passTypeIdentifier, serialNumber string) ([]*entity.Registration, error)

	// FindPassesForDevice retrieves the passes of the given type this device is
	// registered for. When updatedSince is non-nil only passes whose Modified
	// timestamp is strictly greater are returned; passes that were never
	// stamped are excluded by any watermark.
	FindPassesForDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier string, updatedSince *time.Time) ([]*entity.Pass, error)

	// DeleteRegistration removes a registration by its ID. The device and pass
	// endpoints are left untouched.
	DeleteRegistration(ctx context.Context, id uuid.UUID) error
}
