package push

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTestBundle writes a PEM bundle with a self-signed certificate followed
// by its private key, the shape the signing credential ships in.
func writeTestBundle(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "pass.com.example.loyalty"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	bundle := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	bundle = append(bundle, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})...)

	path := filepath.Join(t.TempDir(), "signing.pem")
	require.NoError(t, os.WriteFile(path, bundle, 0o600))

	return path
}

func TestPEMCredentialProvider_Provision(t *testing.T) {
	provider := NewPEMCredentialProvider(writeTestBundle(t), newTestLogger())

	creds, cleanup, err := provider.Provision(context.Background(), "pass.com.example.loyalty")
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	certPEM, err := os.ReadFile(creds.CertificatePath)
	require.NoError(t, err)
	block, _ := pem.Decode(certPEM)
	require.NotNil(t, block)
	assert.Equal(t, "CERTIFICATE", block.Type)

	keyPEM, err := os.ReadFile(creds.PrivateKeyPath)
	require.NoError(t, err)
	block, _ = pem.Decode(keyPEM)
	require.NotNil(t, block)
	assert.Equal(t, "EC PRIVATE KEY", block.Type)

	cleanup()
	_, err = os.Stat(creds.Dir)
	assert.True(t, os.IsNotExist(err))
}

func TestPEMCredentialProvider_Provision_IsolatedPerOperation(t *testing.T) {
	provider := NewPEMCredentialProvider(writeTestBundle(t), newTestLogger())

	first, cleanupFirst, err := provider.Provision(context.Background(), "pass.com.example.loyalty")
	require.NoError(t, err)
	second, cleanupSecond, err := provider.Provision(context.Background(), "pass.com.example.loyalty")
	require.NoError(t, err)

	assert.NotEqual(t, first.Dir, second.Dir)

	// Releasing one operation's credentials must not touch the other's.
	cleanupFirst()
	_, err = os.Stat(second.CertificatePath)
	assert.NoError(t, err)

	cleanupSecond()
}

func TestPEMCredentialProvider_Provision_MissingBundle(t *testing.T) {
	provider := NewPEMCredentialProvider(filepath.Join(t.TempDir(), "absent.pem"), newTestLogger())

	_, _, err := provider.Provision(context.Background(), "pass.com.example.loyalty")
	assert.Error(t, err)
}

func TestSplitPEMBundle_MissingKey(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	template := &x509.Certificate{SerialNumber: big.NewInt(1), NotAfter: time.Now().Add(time.Hour)}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	bundle := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	_, _, err = splitPEMBundle(bundle)
	assert.Error(t, err)
}

func TestFileCredentialProvider_Provision(t *testing.T) {
	source := filepath.Join(t.TempDir(), "service-account.json")
	require.NoError(t, os.WriteFile(source, []byte(`{"type":"service_account"}`), 0o600))

	provider := NewFileCredentialProvider(source, newTestLogger())

	creds, cleanup, err := provider.Provision(context.Background(), "pass.com.example.loyalty")
	require.NoError(t, err)

	staged, err := os.ReadFile(creds.CertificatePath)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(staged))

	cleanup()
	_, err = os.Stat(creds.Dir)
	assert.True(t, os.IsNotExist(err))
}
