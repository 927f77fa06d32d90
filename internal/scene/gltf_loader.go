package scene

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

// ErrEmptyAsset is returned for an asset without any mesh.
var ErrEmptyAsset = errors.New("asset contains no meshes")

// GLTFLoader loads .glb and .gltf assets into entities.
type GLTFLoader struct{}

// NewGLTFLoader creates a glTF entity loader.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{}
}

// Load decodes the asset at path. Each mesh-bearing node becomes a child entity.
func (l *GLTFLoader) Load(ctx context.Context, path string) (*Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(doc.Meshes) == 0 {
		return nil, fmt.Errorf("decode %s: %w", path, ErrEmptyAsset)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	entity := NewEntity(name)
	entity.SourcePath = path
	entity.Source = doc
	entity.MeshCount = len(doc.Meshes)
	entity.NodeCount = len(doc.Nodes)
	entity.MaterialCount = len(doc.Materials)

	for i, node := range doc.Nodes {
		if node == nil || node.Mesh == nil {
			continue
		}
		childName := node.Name
		if childName == "" {
			childName = fmt.Sprintf("%s-node-%d", name, i)
		}
		child := NewEntity(childName)
		child.SourcePath = path
		child.Source = doc
		entity.AddChild(child)
	}

	// the decode may have outlived a cancelled caller
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity, nil
}
