package usecase

import (
	"context"
)

// SerialNumbersPayload is the delta-sync response body. LastUpdated is a
// string-encoded Unix timestamp (seconds, fractional) that round-trips with
// the passesUpdatedSince query parameter; the representation is part of the
// wire contract.
type SerialNumbersPayload struct {
	SerialNumbers []string `json:"serialNumbers"`
	LastUpdated   string   `json:"lastUpdated"`
}

// SyncUsecase computes which passes a device must re-fetch.
type SyncUsecase interface {
	// RegistrationsForDevice returns the serial numbers of passes this device
	// is registered for, filtered to those modified strictly after
	// updatedSince when the watermark is non-empty. Returns
	// ErrNoMatchingPasses when the filtered set is empty.
	RegistrationsForDevice(ctx context.Context, deviceLibraryIdentifier, passTypeIdentifier, updatedSince string) (*SerialNumbersPayload, error)
}
