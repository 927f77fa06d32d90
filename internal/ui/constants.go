package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCancel  = "✕"
	IconConfirm = "✓"
	IconAnchor  = "⚓"
	IconError   = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	// Placement buttons are square touch targets
	PlacementButtonSize    float32 = 60
	PlacementButtonSpacing float32 = 24

	// Thumbnail strip
	TileLabelHeight   float32 = 20
	TilePadding       float32 = 4
	TileSelectedWidth float32 = 3

	// Placeholder and unavailable thumbnails
	PlaceholderOpacity = 0.5
	DisabledOpacity    = 0.3

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 520
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
