package scene

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// AnchorSpacing separates anchors resolved onto the same surface, in metres.
const AnchorSpacing float32 = 0.5

// Graph is an in-process world-tracking session. It reports a fixed set of
// environment surfaces (filtered by the plane-detection flags of the running
// configuration) and keeps the anchor list in memory.
type Graph struct {
	mu            sync.RWMutex
	running       bool
	config        TrackingConfig
	meshSupported bool
	environment   []*Surface
	detected      []*Surface
	anchors       []*Anchor
	perSurface    map[string]int
	onUpdate      func(*Anchor)
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithSurfaces replaces the default environment surfaces.
func WithSurfaces(surfaces ...*Surface) GraphOption {
	return func(g *Graph) {
		g.environment = surfaces
	}
}

// WithMeshReconstruction sets whether the graph reports mesh reconstruction support.
func WithMeshReconstruction(supported bool) GraphOption {
	return func(g *Graph) {
		g.meshSupported = supported
	}
}

// DefaultSurfaces is a floor at the origin and a wall two metres ahead.
func DefaultSurfaces() []*Surface {
	return []*Surface{
		{
			ID:        uuid.NewString(),
			Alignment: AlignmentHorizontal,
			Center:    mgl32.Vec3{0, 0, 0},
			Extent:    mgl32.Vec2{4, 4},
		},
		{
			ID:        uuid.NewString(),
			Alignment: AlignmentVertical,
			Center:    mgl32.Vec3{0, 1.5, -2},
			Extent:    mgl32.Vec2{4, 3},
		},
	}
}

// NewGraph creates a stopped session over the default surfaces.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		environment: DefaultSurfaces(),
		perSurface:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetUpdateCallback sets the callback invoked after each inserted anchor.
func (g *Graph) SetUpdateCallback(callback func(*Anchor)) {
	g.mu.Lock()
	g.onUpdate = callback
	g.mu.Unlock()
}

// Run implements Session.
func (g *Graph) Run(cfg TrackingConfig) error {
	if cfg.SceneReconstruction == ReconstructionMesh && !g.SupportsSceneReconstruction(ReconstructionMesh) {
		return fmt.Errorf("run %s: %w", cfg.SceneReconstruction, ErrReconstructionUnsupported)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.config = cfg
	g.running = true
	g.detected = g.detected[:0]
	for _, s := range g.environment {
		if detects(cfg.PlaneDetection, s.Alignment) {
			g.detected = append(g.detected, s)
		}
	}
	log.Printf("scene: session running (planes=%s, reconstruction=%s, surfaces=%d)",
		cfg.PlaneDetection, cfg.SceneReconstruction, len(g.detected))
	return nil
}

func detects(p PlaneDetection, a PlaneAlignment) bool {
	switch a {
	case AlignmentHorizontal:
		return p.Has(PlaneDetectionHorizontal)
	case AlignmentVertical:
		return p.Has(PlaneDetectionVertical)
	default:
		return false
	}
}

// SupportsSceneReconstruction implements Session.
func (g *Graph) SupportsSceneReconstruction(r Reconstruction) bool {
	switch r {
	case ReconstructionNone:
		return true
	case ReconstructionMesh:
		g.mu.RLock()
		defer g.mu.RUnlock()
		return g.meshSupported
	default:
		return false
	}
}

// AddAnchor implements Session. An anchor whose alignment matches no detected
// surface is kept unresolved at the origin.
func (g *Graph) AddAnchor(a *Anchor) error {
	if a == nil {
		return ErrNilAnchor
	}

	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return ErrSessionNotRunning
	}
	if s := g.findSurface(a.Alignment); s != nil {
		n := g.perSurface[s.ID]
		g.perSurface[s.ID] = n + 1
		offset := mgl32.Vec3{float32(n) * AnchorSpacing, 0, 0}
		pos := s.Center.Add(offset)
		a.Surface = s
		a.Transform = mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	} else {
		log.Printf("scene: no %s surface detected, anchor %s left unresolved", a.Alignment, a.ID)
	}
	g.anchors = append(g.anchors, a)
	callback := g.onUpdate
	g.mu.Unlock()

	if callback != nil {
		callback(a)
	}
	return nil
}

func (g *Graph) findSurface(alignment PlaneAlignment) *Surface {
	for _, s := range g.detected {
		if alignment.Matches(s.Alignment) {
			return s
		}
	}
	return nil
}

// Anchors implements Session.
func (g *Graph) Anchors() []*Anchor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Anchor, len(g.anchors))
	copy(out, g.anchors)
	return out
}

// Surfaces returns the surfaces detected by the current run.
func (g *Graph) Surfaces() []*Surface {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Surface, len(g.detected))
	copy(out, g.detected)
	return out
}

// Config returns the running configuration, or false if Run was never called.
func (g *Graph) Config() (TrackingConfig, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.config, g.running
}
