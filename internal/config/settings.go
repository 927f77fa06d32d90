package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/model-picker/internal/catalog"
	"github.com/ytget/model-picker/internal/loader"
	"github.com/ytget/model-picker/internal/platform"
	"github.com/ytget/model-picker/internal/scene"
)

// Settings keys for Fyne preferences
const (
	KeyAssetDir           = "asset_directory"
	KeyAssetExtension     = "asset_extension"
	KeyThumbnailPolicy    = "thumbnail_policy"
	KeyThumbnailSize      = "thumbnail_size"
	KeyMaxParallelLoads   = "max_parallel_loads"
	KeyDetectHorizontal   = "detect_horizontal_planes"
	KeyDetectVertical     = "detect_vertical_planes"
	KeyMeshReconstruction = "mesh_reconstruction"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultAssetExtension     = catalog.DefaultExtension
	DefaultThumbnailPolicy    = catalog.DefaultPolicy
	DefaultThumbnailSize      = catalog.DefaultThumbnailSize
	DefaultMaxParallelLoads   = loader.DefaultMaxParallelLoads
	DefaultDetectHorizontal   = true
	DefaultDetectVertical     = true
	DefaultMeshReconstruction = true
	DefaultLanguage           = "system"
)

// Thumbnail size bounds, in pixels
const (
	MinThumbnailSize = 32
	MaxThumbnailSize = 512
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetDirectory returns the directory scanned for models
func (s *Settings) GetAssetDirectory() string {
	dir := s.app.Preferences().String(KeyAssetDir)
	if dir == "" {
		return platform.GetResourceDir()
	}
	return dir
}

// SetAssetDirectory sets the asset directory. An empty value restores the bundled directory.
func (s *Settings) SetAssetDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetDir, dir)
}

// GetAssetExtension returns the recognized asset extension, e.g. ".glb"
func (s *Settings) GetAssetExtension() string {
	ext := platform.NormalizeExtension(s.app.Preferences().String(KeyAssetExtension))
	if ext == "" {
		return DefaultAssetExtension
	}
	return ext
}

// SetAssetExtension sets the asset extension
func (s *Settings) SetAssetExtension(ext string) {
	s.app.Preferences().SetString(KeyAssetExtension, platform.NormalizeExtension(ext))
}

// GetThumbnailPolicy returns the missing-thumbnail policy
func (s *Settings) GetThumbnailPolicy() catalog.ThumbnailPolicy {
	p, err := catalog.ParseThumbnailPolicy(s.app.Preferences().String(KeyThumbnailPolicy))
	if err != nil {
		return DefaultThumbnailPolicy
	}
	return p
}

// SetThumbnailPolicy sets the missing-thumbnail policy. Unknown values are ignored.
func (s *Settings) SetThumbnailPolicy(p catalog.ThumbnailPolicy) {
	if _, err := catalog.ParseThumbnailPolicy(string(p)); err != nil {
		return
	}
	s.app.Preferences().SetString(KeyThumbnailPolicy, string(p))
}

// GetThumbnailPolicyOptions returns available thumbnail policies
func (s *Settings) GetThumbnailPolicyOptions() []catalog.ThumbnailPolicy {
	return []catalog.ThumbnailPolicy{catalog.ThumbnailPolicySkip, catalog.ThumbnailPolicyFallback}
}

// GetThumbnailSize returns the thumbnail bounding box in pixels
func (s *Settings) GetThumbnailSize() int {
	value := s.app.Preferences().Int(KeyThumbnailSize)
	if value <= 0 {
		return DefaultThumbnailSize
	}
	return clamp(value, MinThumbnailSize, MaxThumbnailSize)
}

// SetThumbnailSize sets the thumbnail size
func (s *Settings) SetThumbnailSize(px int) {
	s.app.Preferences().SetInt(KeyThumbnailSize, clamp(px, MinThumbnailSize, MaxThumbnailSize))
}

// GetMaxParallelLoads returns the maximum number of concurrent asset loads
func (s *Settings) GetMaxParallelLoads() int {
	value := s.app.Preferences().Int(KeyMaxParallelLoads)
	if value <= 0 {
		s.SetMaxParallelLoads(DefaultMaxParallelLoads)
		return DefaultMaxParallelLoads
	}
	return value
}

// SetMaxParallelLoads sets the maximum number of concurrent asset loads
func (s *Settings) SetMaxParallelLoads(count int) {
	s.app.Preferences().SetInt(KeyMaxParallelLoads, clamp(count, 1, loader.MaxParallelLoads))
}

// GetDetectHorizontalPlanes returns whether horizontal planes are detected
func (s *Settings) GetDetectHorizontalPlanes() bool {
	return s.app.Preferences().BoolWithFallback(KeyDetectHorizontal, DefaultDetectHorizontal)
}

// SetDetectHorizontalPlanes sets horizontal plane detection
func (s *Settings) SetDetectHorizontalPlanes(enabled bool) {
	s.app.Preferences().SetBool(KeyDetectHorizontal, enabled)
}

// GetDetectVerticalPlanes returns whether vertical planes are detected
func (s *Settings) GetDetectVerticalPlanes() bool {
	return s.app.Preferences().BoolWithFallback(KeyDetectVertical, DefaultDetectVertical)
}

// SetDetectVerticalPlanes sets vertical plane detection
func (s *Settings) SetDetectVerticalPlanes(enabled bool) {
	s.app.Preferences().SetBool(KeyDetectVertical, enabled)
}

// GetMeshReconstruction returns whether mesh reconstruction is requested
func (s *Settings) GetMeshReconstruction() bool {
	return s.app.Preferences().BoolWithFallback(KeyMeshReconstruction, DefaultMeshReconstruction)
}

// SetMeshReconstruction sets whether mesh reconstruction is requested
func (s *Settings) SetMeshReconstruction(enabled bool) {
	s.app.Preferences().SetBool(KeyMeshReconstruction, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// TrackingConfig builds the requested world-tracking configuration. Mesh
// reconstruction is still subject to the session's capability check.
func (s *Settings) TrackingConfig() scene.TrackingConfig {
	cfg := scene.NewWorldTrackingConfig()
	cfg.PlaneDetection = scene.PlaneDetectionNone
	if s.GetDetectHorizontalPlanes() {
		cfg.PlaneDetection |= scene.PlaneDetectionHorizontal
	}
	if s.GetDetectVerticalPlanes() {
		cfg.PlaneDetection |= scene.PlaneDetectionVertical
	}
	if s.GetMeshReconstruction() {
		cfg.SceneReconstruction = scene.ReconstructionMesh
	}
	return cfg
}

// CatalogOptions returns the catalog loader options for the current settings.
func (s *Settings) CatalogOptions() []catalog.Option {
	return []catalog.Option{
		catalog.WithExtension(s.GetAssetExtension()),
		catalog.WithThumbnailPolicy(s.GetThumbnailPolicy()),
		catalog.WithThumbnailSize(uint(s.GetThumbnailSize())),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
