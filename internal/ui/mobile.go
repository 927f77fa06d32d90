package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides device-dependent sizing for the overlay controls
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// TileSize returns the on-screen size of a thumbnail tile for a thumbnail
// of thumbPx pixels. Tiles never shrink below a touch target.
func (m *MobileUI) TileSize(thumbPx int) fyne.Size {
	side := float32(thumbPx)
	if m.IsMobileDevice() && m.IsLandscape() {
		// less vertical room over the camera view
		side *= 0.8
	}
	if side < MinTouchTargetSize {
		side = MinTouchTargetSize
	}
	return fyne.NewSize(side+2*TilePadding, side+TileLabelHeight+2*TilePadding)
}

// Spacing returns appropriate spacing between overlay controls
func (m *MobileUI) Spacing() float32 {
	if m.IsMobileDevice() {
		return 16
	}
	return 8
}
