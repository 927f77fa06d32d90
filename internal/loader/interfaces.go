package loader

import (
	"context"

	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/scene"
)

// EntityLoader decodes one asset into a renderable entity.
type EntityLoader interface {
	Load(ctx context.Context, path string) (*scene.Entity, error)
}

// AssetLoader defines the interface for the asset load service.
type AssetLoader interface {
	SetUpdateCallback(func(*model.ModelDescriptor))
	Start(ctx context.Context, descriptors []*model.ModelDescriptor) []*Future
	Wait()

	// SetMaxParallelLoads bounds concurrent loads for subsequent Start calls
	SetMaxParallelLoads(max int)
}
