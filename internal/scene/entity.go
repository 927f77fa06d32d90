package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/qmuntal/gltf"
)

// Entity is a renderable node loaded from a 3D asset. Source is the decoded
// asset document; it is shared between clones and must be treated as read-only.
type Entity struct {
	ID            string
	Name          string
	SourcePath    string
	Source        *gltf.Document `copier:"-"`
	Transform     mgl32.Mat4
	MeshCount     int
	NodeCount     int
	MaterialCount int
	Children      []*Entity
}

// NewEntity creates an entity with a fresh ID and identity transform.
func NewEntity(name string) *Entity {
	return &Entity{
		ID:        uuid.NewString(),
		Name:      name,
		Transform: mgl32.Ident4(),
	}
}

// AddChild appends child to the entity's children.
func (e *Entity) AddChild(child *Entity) {
	if child == nil {
		return
	}
	e.Children = append(e.Children, child)
}

// Clone returns a deep copy with fresh IDs. When recursive is false the copy
// has no children. The source document is shared, never copied.
func (e *Entity) Clone(recursive bool) *Entity {
	clone := &Entity{}
	if err := copier.CopyWithOption(clone, e, copier.Option{DeepCopy: true}); err != nil {
		log.Printf("scene: deep copy of entity %s failed, copying shallow: %v", e.Name, err)
		*clone = *e
		clone.Children = nil
		for _, child := range e.Children {
			clone.Children = append(clone.Children, child.Clone(true))
		}
	}
	if !recursive {
		clone.Children = nil
	}
	relink(clone, e)
	return clone
}

// relink assigns fresh IDs across the cloned tree and restores the shared
// source documents skipped by the deep copy.
func relink(dst, src *Entity) {
	dst.ID = uuid.NewString()
	dst.Source = src.Source
	for i := range dst.Children {
		if i < len(src.Children) {
			relink(dst.Children[i], src.Children[i])
		}
	}
}

// Walk visits the entity and all descendants depth-first.
func (e *Entity) Walk(fn func(*Entity)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}
