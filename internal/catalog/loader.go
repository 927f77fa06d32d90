package catalog

import (
	"log"
	"path/filepath"

	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/platform"
)

// Defaults
const (
	DefaultExtension     = ".glb"
	DefaultThumbnailSize = 80
	DefaultPolicy        = ThumbnailPolicySkip

	MinThumbnailSize = 16
)

// Loader builds a Catalog from a resource directory.
type Loader struct {
	dir           string
	ext           string
	policy        ThumbnailPolicy
	thumbnailSize uint
}

// Option configures a Loader.
type Option func(*Loader)

// WithExtension sets the recognized asset extension, e.g. ".glb".
func WithExtension(ext string) Option {
	return func(l *Loader) {
		if e := platform.NormalizeExtension(ext); e != "" {
			l.ext = e
		}
	}
}

// WithThumbnailPolicy sets the missing-thumbnail policy.
func WithThumbnailPolicy(p ThumbnailPolicy) Option {
	return func(l *Loader) {
		if _, err := ParseThumbnailPolicy(string(p)); err == nil {
			l.policy = p
		}
	}
}

// WithThumbnailSize sets the thumbnail bounding box in pixels.
func WithThumbnailSize(px uint) Option {
	return func(l *Loader) {
		if px < MinThumbnailSize {
			px = MinThumbnailSize
		}
		l.thumbnailSize = px
	}
}

// NewLoader creates a loader for dir with the default extension and policy.
func NewLoader(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:           dir,
		ext:           DefaultExtension,
		policy:        DefaultPolicy,
		thumbnailSize: DefaultThumbnailSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the resource directory being read.
func (l *Loader) Dir() string {
	return l.dir
}

// LoadCatalog lists the resource directory and builds one descriptor per
// asset. It does not start entity loads; see loader.Service.
func (l *Loader) LoadCatalog() *Catalog {
	files, err := platform.ListFilesWithExtension(l.dir, l.ext)
	if err != nil {
		log.Printf("catalog: %v; using empty catalog", err)
		return NewCatalog()
	}

	descriptors := make([]*model.ModelDescriptor, 0, len(files))
	for _, filename := range files {
		if d := l.describe(filename); d != nil {
			descriptors = append(descriptors, d)
		}
	}

	c := NewCatalog(descriptors...)
	log.Printf("catalog: %d model(s) in %s", c.Len(), l.dir)
	return c
}

// describe builds the descriptor for one asset file, or returns nil when the
// skip policy rejects it.
func (l *Loader) describe(filename string) *model.ModelDescriptor {
	name := platform.TrimExtension(filename, l.ext)
	d := model.NewModelDescriptor(name, filepath.Join(l.dir, filename))

	thumb, path, err := loadThumbnail(l.dir, name, l.thumbnailSize)
	if err == nil {
		d.Thumbnail = thumb
		d.ThumbnailPath = path
		return d
	}

	if l.policy == ThumbnailPolicySkip {
		log.Printf("catalog: warning: skipping %s: %v", filename, err)
		return nil
	}
	log.Printf("catalog: warning: %s uses a placeholder thumbnail: %v", filename, err)
	d.Thumbnail = placeholderThumbnail(l.thumbnailSize)
	d.ThumbnailMissing = true
	return d
}
