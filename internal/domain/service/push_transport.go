// Package service defines interfaces for external collaborators the core
// depends on: push delivery, credential provisioning, pass rendering and
// event publishing. Concrete implementations live under internal/infra.
package service

import (
	"context"

	"passbook/internal/errors"
)

// ErrBadDeviceToken is the push transport's permanent rejection: the token
// will never succeed again and the registry must self-heal by pruning the
// device and its registration. Transports wrap their provider-specific
// rejection into this sentinel so the orchestrator can errors.Is on it.
var ErrBadDeviceToken = errors.New("bad device token")

// PushTransport delivers "content changed, go fetch" notifications to device
// push tokens. The payload is intentionally empty: it signals the device to
// re-poll, it never carries pass content. Instances are scoped to a single
// fan-out operation so credential configuration never interleaves across
// concurrent operations.
type PushTransport interface {
	// Send dispatches one empty update notification to a device token.
	// Returns ErrBadDeviceToken (possibly wrapped) on permanent rejection.
	Send(ctx context.Context, pushToken string) error

	// Close releases the transport's connections.
	Close() error
}

// TransportCredentials are the operation-scoped delivery credentials derived
// from the operator's long-lived signing credential. All paths live inside
// Dir, which is removed when the operation's cleanup runs.
type TransportCredentials struct {
	Dir             string // Freshly created temporary directory owning the artifacts.
	CertificatePath string // PEM-encoded delivery certificate chain.
	PrivateKeyPath  string // PEM-encoded delivery private key.
}

// CredentialProvider provisions transient delivery credentials for one
// fan-out operation. The returned cleanup func must run on every exit path,
// success or failure, and removes the temporary location.
type CredentialProvider interface {
	Provision(ctx context.Context, passTypeIdentifier string) (*TransportCredentials, func(), error)
}

// TransportFactory builds a per-operation PushTransport from provisioned
// credentials. Giving each operation an isolated transport instance replaces
// the swap-then-restore discipline a process-wide transport would need.
type TransportFactory interface {
	NewTransport(ctx context.Context, passTypeIdentifier string, creds *TransportCredentials) (PushTransport, error)
}
