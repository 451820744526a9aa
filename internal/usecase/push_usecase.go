package usecase

import (
	"context"
)

// BroadcastReport summarizes one completed fan-out.
type BroadcastReport struct {
	Attempted int `json:"attempted"` // Registrations a dispatch was attempted for.
	Delivered int `json:"delivered"` // Dispatches the transport accepted.
	Pruned    int `json:"pruned"`    // Registrations removed because the token was permanently rejected.
}

// PushUsecase broadcasts "content changed" notifications to every device
// registered for a pass.
type PushUsecase interface {
	// NotifyPassHolders provisions operation-scoped delivery credentials,
	// dispatches one empty update notification per registration concurrently,
	// prunes registrations whose token is permanently invalid, and reports
	// the outcome. Individual dispatch failures never fail the batch; only
	// provisioning can.
	NotifyPassHolders(ctx context.Context, passTypeIdentifier, serialNumber string) (*BroadcastReport, error)

	// PushTokens lists the push tokens currently registered for a pass (diagnostic).
	PushTokens(ctx context.Context, passTypeIdentifier, serialNumber string) ([]string, error)
}
