package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OverlayTheme is the theme for controls drawn over the camera view: bold
// primary colors, translucent overlay background and larger touch padding.
type OverlayTheme struct{}

// NewOverlayTheme creates a new overlay theme
func NewOverlayTheme() fyne.Theme {
	return &OverlayTheme{}
}

// Color returns theme colors
func (t *OverlayTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // confirm
	case theme.ColorNameError:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255} // cancel, failures
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255} // selected tile outline
	case theme.ColorNameOverlayBackground:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 140}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 12, G: 12, B: 12, A: 255}
		}
		return color.RGBA{R: 236, G: 239, B: 241, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *OverlayTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *OverlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *OverlayTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameScrollBarSmall:
		return 2 // thin bar under the thumbnail strip
	case theme.SizeNameText:
		return 14
	case theme.SizeNameCaptionText:
		return 11 // tile labels
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
