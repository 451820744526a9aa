package push

import (
	"context"
	"log/slog"

	"passbook/config"
	"passbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported push providers.
const (
	ProviderAPNs = "apns"
	ProviderFCM  = "fcm"
)

// transportFactory builds a fresh transport per fan-out operation according
// to the configured provider.
type transportFactory struct {
	cfg    *config.PushConfig
	logger *slog.Logger
}

func (f *transportFactory) NewTransport(ctx context.Context, passTypeIdentifier string, creds *service.TransportCredentials) (service.PushTransport, error) {
	switch f.cfg.Provider {
	case ProviderAPNs:
		return newAPNsTransport(f.cfg.APNs.Gateway, passTypeIdentifier, creds, f.logger)
	case ProviderFCM:
		return newFCMTransport(ctx, f.cfg.Firebase.ProjectID, passTypeIdentifier, creds, f.logger)
	default:
		return nil, errors.Errorf("unknown push provider: %s", f.cfg.Provider)
	}
}

// ProviderParams holds dependencies for the push provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewCredentialProvider creates the CredentialProvider matching the
// configured push provider.
func NewCredentialProvider(params ProviderParams) (service.CredentialProvider, error) {
	cfg := params.Config.Push
	if cfg == nil {
		return nil, errors.New("push configuration is required")
	}

	switch cfg.Provider {
	case ProviderAPNs:
		if cfg.APNs == nil || cfg.APNs.SigningCredentialPath == "" {
			return nil, errors.New("push.apns.signingCredentialPath is required for apns provider")
		}

		return NewPEMCredentialProvider(cfg.APNs.SigningCredentialPath, params.Logger), nil

	case ProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
			return nil, errors.New("push.firebase.credentialsPath is required for fcm provider")
		}

		return NewFileCredentialProvider(cfg.Firebase.CredentialsPath, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}
}

// NewTransportFactory creates the TransportFactory matching the configured
// push provider.
func NewTransportFactory(params ProviderParams) (service.TransportFactory, error) {
	cfg := params.Config.Push
	if cfg == nil {
		return nil, errors.New("push configuration is required")
	}

	switch cfg.Provider {
	case ProviderAPNs:
		if cfg.APNs == nil || cfg.APNs.Gateway == "" {
			return nil, errors.New("push.apns.gateway is required for apns provider")
		}
	case ProviderFCM:
		if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
			return nil, errors.New("push.firebase.projectId is required for fcm provider")
		}
	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Provider)
	}

	return &transportFactory{cfg: cfg, logger: params.Logger}, nil
}

// Module provides the push transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCredentialProvider),
	fx.Provide(NewTransportFactory),
)
