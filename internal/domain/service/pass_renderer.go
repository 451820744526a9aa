package service

import (
	"context"
	"sync"

	"passbook/internal/domain/entity"
	"passbook/internal/errors"
)

// ErrNoRenderer is returned when no renderer is registered for a pass type.
var ErrNoRenderer = errors.New("no renderer registered for pass type")

// PassRenderer produces the signed binary payload (.pkpass) for a pass.
// Generation, templating and signing belong to the embedding system; the core
// only asks for bytes once the conditional fetch gate has decided a client's
// copy is stale.
type PassRenderer interface {
	RenderPass(ctx context.Context, pass *entity.Pass) ([]byte, error)
}

// RendererRegistry maps a pass type identifier to the renderer the embedding
// application supplied for it. Resolution happens at request time.
type RendererRegistry struct {
	mu        sync.RWMutex
	renderers map[string]PassRenderer
}

// NewRendererRegistry creates an empty registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]PassRenderer),
	}
}

// Register binds a renderer to a pass type identifier, replacing any previous binding.
func (r *RendererRegistry) Register(passTypeIdentifier string, renderer PassRenderer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers[passTypeIdentifier] = renderer
}

// Lookup resolves the renderer for a pass type identifier.
func (r *RendererRegistry) Lookup(passTypeIdentifier string) (PassRenderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[passTypeIdentifier]
	if !ok {
		return nil, errors.Wrap(ErrNoRenderer, passTypeIdentifier)
	}

	return renderer, nil
}
