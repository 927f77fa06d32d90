package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// PlaneAlignment restricts which detected surfaces an anchor may attach to.
type PlaneAlignment string

const (
	AlignmentAny        PlaneAlignment = "any"
	AlignmentHorizontal PlaneAlignment = "horizontal"
	AlignmentVertical   PlaneAlignment = "vertical"
)

// Matches reports whether a surface with alignment s satisfies a.
func (a PlaneAlignment) Matches(s PlaneAlignment) bool {
	return a == AlignmentAny || a == s
}

// Surface is a plane detected by the tracking session.
type Surface struct {
	ID        string
	Alignment PlaneAlignment
	Center    mgl32.Vec3
	Extent    mgl32.Vec2
}

// Anchor pins a group of entities to a detected surface. Surface stays nil
// until the session resolves the anchor's target.
type Anchor struct {
	ID        string
	Alignment PlaneAlignment
	Transform mgl32.Mat4
	Surface   *Surface
	Children  []*Entity
}

// NewPlaneAnchor creates an unresolved anchor targeting a plane with the given alignment.
func NewPlaneAnchor(alignment PlaneAlignment) *Anchor {
	return &Anchor{
		ID:        uuid.NewString(),
		Alignment: alignment,
		Transform: mgl32.Ident4(),
	}
}

// AddChild attaches an entity to the anchor.
func (a *Anchor) AddChild(e *Entity) {
	if e == nil {
		return
	}
	a.Children = append(a.Children, e)
}

// Clone copies the anchor with a fresh ID; recursive also deep-copies the
// attached entities so one loaded entity can be placed many times.
func (a *Anchor) Clone(recursive bool) *Anchor {
	clone := &Anchor{
		ID:        uuid.NewString(),
		Alignment: a.Alignment,
		Transform: a.Transform,
		Surface:   a.Surface,
	}
	if !recursive {
		clone.Children = append(clone.Children, a.Children...)
		return clone
	}
	for _, child := range a.Children {
		clone.Children = append(clone.Children, child.Clone(true))
	}
	return clone
}

// Position returns the anchor's world-space translation.
func (a *Anchor) Position() mgl32.Vec3 {
	return a.Transform.Col(3).Vec3()
}

// Resolved reports whether the anchor has been attached to a surface.
func (a *Anchor) Resolved() bool {
	return a.Surface != nil
}
