// Package passes provides the file-backed pass renderer: signed .pkpass
// payloads are produced out of band and served from a directory tree.
package passes

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"passbook/internal/domain/entity"
	"passbook/internal/domain/service"

	"github.com/pkg/errors"
)

// fileRenderer serves pre-rendered payloads from
// {dir}/{passTypeIdentifier}/{serialNumber}.pkpass.
type fileRenderer struct {
	dir string
}

// NewFileRenderer creates a renderer reading payloads under dir.
func NewFileRenderer(dir string) service.PassRenderer {
	return &fileRenderer{dir: dir}
}

// RenderPass reads the payload for the pass. The pass identifiers come from
// the database, not the request path, but they still must not escape the
// payload tree.
func (r *fileRenderer) RenderPass(ctx context.Context, pass *entity.Pass) ([]byte, error) {
	path := filepath.Join(r.dir, pass.PassTypeIdentifier, pass.SerialNumber+".pkpass")

	cleaned, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	root, err := filepath.Abs(r.dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !strings.HasPrefix(cleaned, root+string(filepath.Separator)) {
		return nil, errors.Errorf("pass payload path escapes payload dir: %s", path)
	}

	data, err := os.ReadFile(cleaned)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pass payload %s", path)
	}

	return data, nil
}

// RegisterConfiguredRenderers binds a file renderer to every configured pass
// type. Pass types without a binding yield a renderer-not-registered failure
// at request time instead of a silent empty payload.
func RegisterConfiguredRenderers(registry *service.RendererRegistry, dir string, passTypes []string) {
	renderer := NewFileRenderer(dir)
	for _, passType := range passTypes {
		registry.Register(passType, renderer)
	}
}
