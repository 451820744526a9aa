package usecase

import (
	"context"
	"time"

	"passbook/internal/domain/entity"
)

// PassBundle is a rendered pass payload together with its Last-Modified value.
type PassBundle struct {
	Data     []byte
	Modified time.Time
}

// PassUsecase serves pass payloads behind the conditional fetch gate and
// manages pass records on behalf of the embedding system.
type PassUsecase interface {
	// LatestPass renders and returns the current pass payload unless the
	// caller's copy is still fresh. ifModifiedSince is seconds since epoch,
	// zero when the caller supplied none; a pass whose modified timestamp is
	// not strictly greater yields ErrPassNotModified.
	LatestPass(ctx context.Context, passTypeIdentifier, serialNumber string, ifModifiedSince int64) (*PassBundle, error)

	// CreatePass registers a new pass record for the given external key.
	CreatePass(ctx context.Context, passTypeIdentifier, serialNumber string) (*entity.Pass, error)

	// StampPass marks the pass's content as changed at the given instant.
	// Devices learn about the change on their next delta sync or push.
	StampPass(ctx context.Context, passTypeIdentifier, serialNumber string, modified time.Time) error

	// DistributionQR renders a QR code encoding the pass download URL.
	DistributionQR(ctx context.Context, passTypeIdentifier, serialNumber string) ([]byte, error)
}
