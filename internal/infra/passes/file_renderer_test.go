package passes

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"passbook/internal/domain/entity"
	"passbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRenderer_RenderPass(t *testing.T) {
	dir := t.TempDir()
	passDir := filepath.Join(dir, "pass.com.example.loyalty")
	require.NoError(t, os.MkdirAll(passDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(passDir, "SN-001.pkpass"), []byte("pkpass-bytes"), 0o644))

	renderer := NewFileRenderer(dir)

	data, err := renderer.RenderPass(context.Background(), &entity.Pass{
		PassTypeIdentifier: "pass.com.example.loyalty",
		SerialNumber:       "SN-001",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("pkpass-bytes"), data)
}

func TestFileRenderer_RenderPass_MissingPayload(t *testing.T) {
	renderer := NewFileRenderer(t.TempDir())

	_, err := renderer.RenderPass(context.Background(), &entity.Pass{
		PassTypeIdentifier: "pass.com.example.loyalty",
		SerialNumber:       "missing",
	})
	assert.Error(t, err)
}

func TestFileRenderer_RenderPass_PathEscape(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(filepath.Dir(dir), "outside.pkpass")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	renderer := NewFileRenderer(dir)

	_, err := renderer.RenderPass(context.Background(), &entity.Pass{
		PassTypeIdentifier: "..",
		SerialNumber:       "outside",
	})
	assert.Error(t, err)
}

func TestRegisterConfiguredRenderers(t *testing.T) {
	registry := service.NewRendererRegistry()

	RegisterConfiguredRenderers(registry, t.TempDir(), []string{
		"pass.com.example.loyalty",
		"pass.com.example.coupon",
	})

	_, err := registry.Lookup("pass.com.example.loyalty")
	assert.NoError(t, err)
	_, err = registry.Lookup("pass.com.example.coupon")
	assert.NoError(t, err)
	_, err = registry.Lookup("pass.com.example.unknown")
	assert.ErrorIs(t, err, service.ErrNoRenderer)
}
