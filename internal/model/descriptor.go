package model

import (
	"image"
	"sync"

	"github.com/ytget/model-picker/internal/scene"
)

// ModelDescriptor is one placeable 3D asset from the catalog. Everything but
// the entity slot is fixed at creation; the slot is filled at most once.
type ModelDescriptor struct {
	Name          string
	AssetPath     string
	ThumbnailPath string
	Thumbnail     image.Image
	// ThumbnailMissing marks a placeholder thumbnail supplied by the fallback policy
	ThumbnailMissing bool

	mu        sync.RWMutex
	entity    *scene.Entity
	status    LoadStatus
	lastError string
}

// NewModelDescriptor creates a descriptor whose entity is still pending.
func NewModelDescriptor(name, assetPath string) *ModelDescriptor {
	return &ModelDescriptor{
		Name:      name,
		AssetPath: assetPath,
		status:    LoadStatusPending,
	}
}

// Entity returns the loaded entity, if any.
func (d *ModelDescriptor) Entity() (*scene.Entity, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.entity, d.entity != nil
}

// Status returns the load status.
func (d *ModelDescriptor) Status() LoadStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// LastError returns the load error message, or "" when none.
func (d *ModelDescriptor) LastError() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastError
}

// Resolve records the outcome of the entity load. Only the first call has an
// effect; it returns false for any later call.
func (d *ModelDescriptor) Resolve(entity *scene.Entity, err error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.status.IsFinished() {
		return false
	}
	switch {
	case err != nil:
		d.status = LoadStatusFailed
		d.lastError = err.Error()
	case entity == nil:
		d.status = LoadStatusFailed
		d.lastError = "loader returned no entity"
	default:
		d.status = LoadStatusLoaded
		d.entity = entity
	}
	return true
}

// Available reports whether the model can still be placed, i.e. its load has
// not failed. Pending models are selectable; confirming them is a no-op.
func (d *ModelDescriptor) Available() bool {
	return d.Status() != LoadStatusFailed
}
