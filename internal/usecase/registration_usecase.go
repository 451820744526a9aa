// Package usecase defines the application-level interfaces of the wallet
// web service: registration, delta sync, conditional fetch, push fan-out and
// the device error log sink.
package usecase

import (
	"context"
)

// RegistrationResult reports how a registration attempt concluded.
type RegistrationResult int

const (
	// RegistrationCreated means a new registration row was created.
	RegistrationCreated RegistrationResult = iota
	// RegistrationAlreadyExists means the device already held this
	// registration. Re-registration is expected client behavior and maps to a
	// success status, never an error.
	RegistrationAlreadyExists
)

// RegistrationUsecase resolves registrations linking devices to passes.
type RegistrationUsecase interface {
	// RegisterDevice links a device to a pass, creating the device on first
	// contact. Idempotent per (device, pass) pair.
	RegisterDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, serialNumber, pushToken string) (RegistrationResult, error)

	// UnregisterDevice removes the registration linking the device to the
	// pass. The device row is kept; only the link is removed.
	UnregisterDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, serialNumber string) error
}
