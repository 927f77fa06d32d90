package scene

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGLB(t *testing.T, dir, name string, meshes int) string {
	t.Helper()
	doc := gltf.NewDocument()
	for i := 0; i < meshes; i++ {
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: "mesh", Primitives: []*gltf.Primitive{{}}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "part", Mesh: gltf.Index(i)})
	}
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "empty"})
	path := filepath.Join(dir, name)
	require.NoError(t, gltf.SaveBinary(doc, path))
	return path
}

func TestGLTFLoader_Load(t *testing.T) {
	path := writeGLB(t, t.TempDir(), "chair.glb", 2)

	entity, err := NewGLTFLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "chair", entity.Name)
	assert.Equal(t, path, entity.SourcePath)
	assert.NotNil(t, entity.Source)
	assert.Equal(t, 2, entity.MeshCount)
	assert.Equal(t, 3, entity.NodeCount)
	assert.Len(t, entity.Children, 2)
}

func TestGLTFLoader_EmptyAsset(t *testing.T) {
	path := writeGLB(t, t.TempDir(), "empty.glb", 0)

	_, err := NewGLTFLoader().Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrEmptyAsset)
}

func TestGLTFLoader_MissingFile(t *testing.T) {
	_, err := NewGLTFLoader().Load(context.Background(), "/nonexistent/path.glb")
	assert.Error(t, err)
}

func TestGLTFLoader_CancelledContext(t *testing.T) {
	path := writeGLB(t, t.TempDir(), "lamp.glb", 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGLTFLoader().Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
