package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/model-picker/internal/platform"
)

const (
	AppIcon = "model-picker.png"
)

// LoadAppIcon loads the application icon from the resource directory
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(filepath.Join(platform.GetResourceDir(), AppIcon))
}
