// Package push implements the update-notification delivery transports and
// the per-operation credential provisioning they build on.
package push

import (
	"context"
	"encoding/pem"
	"log/slog"
	"os"
	"path/filepath"

	"passbook/internal/domain/service"

	"github.com/pkg/errors"
)

// pemCredentialProvider derives operation-scoped delivery credentials from a
// long-lived PEM bundle holding the certificate chain and private key. Each
// Provision call stages a fresh split into its own temporary directory, so
// concurrent fan-outs never read or remove each other's material.
type pemCredentialProvider struct {
	signingCredentialPath string
	logger                *slog.Logger
}

// NewPEMCredentialProvider creates a credential provider backed by the
// operator's PEM bundle on disk.
func NewPEMCredentialProvider(signingCredentialPath string, logger *slog.Logger) service.CredentialProvider {
	return &pemCredentialProvider{
		signingCredentialPath: signingCredentialPath,
		logger:                logger,
	}
}

// Provision splits the PEM bundle into cert.pem and key.pem inside a fresh
// temporary directory. The returned cleanup removes the directory and must
// run on every exit path.
func (p *pemCredentialProvider) Provision(ctx context.Context, passTypeIdentifier string) (*service.TransportCredentials, func(), error) {
	bundle, err := os.ReadFile(p.signingCredentialPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read signing credential bundle")
	}

	certPEM, keyPEM, err := splitPEMBundle(bundle)
	if err != nil {
		return nil, nil, err
	}

	dir, err := os.MkdirTemp("", "passbook-push-*")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create credential directory")
	}

	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			p.logger.Warn("failed to remove credential directory",
				slog.String("dir", dir),
				slog.Any("error", err),
			)
		}
	}

	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	if err := os.WriteFile(certPath, certPEM, 0o600); err != nil {
		cleanup()

		return nil, nil, errors.Wrap(err, "failed to write delivery certificate")
	}
	if err := os.WriteFile(keyPath, keyPEM, 0o600); err != nil {
		cleanup()

		return nil, nil, errors.Wrap(err, "failed to write delivery key")
	}

	p.logger.Debug("provisioned delivery credentials",
		slog.String("passTypeIdentifier", passTypeIdentifier),
		slog.String("dir", dir),
	)

	return &service.TransportCredentials{
		Dir:             dir,
		CertificatePath: certPath,
		PrivateKeyPath:  keyPath,
	}, cleanup, nil
}

// splitPEMBundle separates certificate blocks from key blocks. Certificate
// order in the bundle is preserved so intermediate chains stay intact.
func splitPEMBundle(bundle []byte) (certPEM, keyPEM []byte, err error) {
	rest := bundle
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}

		encoded := pem.EncodeToMemory(block)
		switch block.Type {
		case "CERTIFICATE":
			certPEM = append(certPEM, encoded...)
		case "PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY":
			keyPEM = append(keyPEM, encoded...)
		}
	}

	if len(certPEM) == 0 {
		return nil, nil, errors.New("signing credential bundle contains no certificate")
	}
	if len(keyPEM) == 0 {
		return nil, nil, errors.New("signing credential bundle contains no private key")
	}

	return certPEM, keyPEM, nil
}

// fileCredentialProvider stages a single credential file (a Firebase service
// account key) into an operation-scoped directory.
type fileCredentialProvider struct {
	credentialsPath string
	logger          *slog.Logger
}

// NewFileCredentialProvider creates a credential provider that copies the
// configured credentials file per operation.
func NewFileCredentialProvider(credentialsPath string, logger *slog.Logger) service.CredentialProvider {
	return &fileCredentialProvider{
		credentialsPath: credentialsPath,
		logger:          logger,
	}
}

func (p *fileCredentialProvider) Provision(ctx context.Context, passTypeIdentifier string) (*service.TransportCredentials, func(), error) {
	content, err := os.ReadFile(p.credentialsPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read credentials file")
	}

	dir, err := os.MkdirTemp("", "passbook-push-*")
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create credential directory")
	}

	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			p.logger.Warn("failed to remove credential directory",
				slog.String("dir", dir),
				slog.Any("error", err),
			)
		}
	}

	staged := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(staged, content, 0o600); err != nil {
		cleanup()

		return nil, nil, errors.Wrap(err, "failed to stage credentials file")
	}

	return &service.TransportCredentials{
		Dir:             dir,
		CertificatePath: staged,
	}, cleanup, nil
}
