package scene

import "errors"

// Session errors
var (
	ErrSessionNotRunning         = errors.New("session is not running")
	ErrReconstructionUnsupported = errors.New("scene reconstruction not supported")
	ErrNilAnchor                 = errors.New("anchor is nil")
)

// Session is the tracking and scene-graph surface of the AR engine.
type Session interface {
	// Run starts (or restarts) tracking with cfg. Existing anchors are kept.
	Run(cfg TrackingConfig) error

	// SupportsSceneReconstruction is the capability query for dense reconstruction.
	SupportsSceneReconstruction(r Reconstruction) bool

	// AddAnchor inserts a into the live scene graph.
	AddAnchor(a *Anchor) error

	// Anchors returns the anchors currently in the scene.
	Anchors() []*Anchor
}
