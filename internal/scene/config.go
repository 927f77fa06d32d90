package scene

import "strings"

// PlaneDetection is a set of surface orientations the session should detect.
type PlaneDetection uint8

const (
	PlaneDetectionHorizontal PlaneDetection = 1 << iota
	PlaneDetectionVertical

	PlaneDetectionNone PlaneDetection = 0
)

// Has reports whether all orientations in flag are enabled.
func (p PlaneDetection) Has(flag PlaneDetection) bool {
	return p&flag == flag
}

// String returns e.g. "horizontal+vertical" or "none"
func (p PlaneDetection) String() string {
	var parts []string
	if p.Has(PlaneDetectionHorizontal) {
		parts = append(parts, "horizontal")
	}
	if p.Has(PlaneDetectionVertical) {
		parts = append(parts, "vertical")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Reconstruction selects dense scene reconstruction.
type Reconstruction string

const (
	ReconstructionNone Reconstruction = "none"
	ReconstructionMesh Reconstruction = "mesh"
)

// TrackingConfig is the world-tracking configuration handed to Session.Run.
type TrackingConfig struct {
	PlaneDetection       PlaneDetection
	EnvironmentTexturing bool
	SceneReconstruction  Reconstruction
}

// NewWorldTrackingConfig returns continuous world tracking with horizontal and
// vertical plane detection, automatic environment texturing and no mesh
// reconstruction. Mesh reconstruction is opt-in after a capability check.
func NewWorldTrackingConfig() TrackingConfig {
	return TrackingConfig{
		PlaneDetection:       PlaneDetectionHorizontal | PlaneDetectionVertical,
		EnvironmentTexturing: true,
		SceneReconstruction:  ReconstructionNone,
	}
}
