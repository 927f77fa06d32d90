package loader

import (
	"context"
	"sync"

	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/scene"
)

// Future is the pending result of one descriptor's entity load. It completes
// exactly once, after the result has been merged into the descriptor.
type Future struct {
	descriptor *model.ModelDescriptor
	done       chan struct{}
	once       sync.Once
	entity     *scene.Entity
	err        error
}

func newFuture(d *model.ModelDescriptor) *Future {
	return &Future{descriptor: d, done: make(chan struct{})}
}

func (f *Future) complete(entity *scene.Entity, err error) {
	f.once.Do(func() {
		f.entity = entity
		f.err = err
		close(f.done)
	})
}

// Descriptor returns the descriptor this load belongs to.
func (f *Future) Descriptor() *model.ModelDescriptor {
	return f.descriptor
}

// Done is closed once the result is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the load completes or ctx is done.
func (f *Future) Await(ctx context.Context) (*scene.Entity, error) {
	select {
	case <-f.done:
		return f.entity, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
