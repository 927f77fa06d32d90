package catalog

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/ytget/model-picker/internal/platform"
)

// ThumbnailPolicy decides what happens to an asset without a usable thumbnail.
type ThumbnailPolicy string

const (
	// ThumbnailPolicySkip drops the asset from the catalog
	ThumbnailPolicySkip ThumbnailPolicy = "skip"

	// ThumbnailPolicyFallback keeps the asset with a placeholder thumbnail
	ThumbnailPolicyFallback ThumbnailPolicy = "fallback"
)

// Thumbnail errors
var (
	ErrThumbnailMissing = errors.New("thumbnail missing")
	ErrUnknownPolicy    = errors.New("unknown thumbnail policy")
)

// Placeholder colors
var (
	placeholderFill   = color.RGBA{R: 189, G: 189, B: 189, A: 255}
	placeholderBorder = color.RGBA{R: 117, G: 117, B: 117, A: 255}
)

// ParseThumbnailPolicy converts a settings value into a policy.
func ParseThumbnailPolicy(s string) (ThumbnailPolicy, error) {
	switch p := ThumbnailPolicy(s); p {
	case ThumbnailPolicySkip, ThumbnailPolicyFallback:
		return p, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPolicy)
	}
}

// loadThumbnail finds the sidecar image for name in dir and scales it to fit
// a size×size box, preserving aspect ratio.
func loadThumbnail(dir, name string, size uint) (image.Image, string, error) {
	path, ok := platform.FindSidecar(dir, name, platform.ThumbnailExtensions)
	if !ok {
		return nil, "", fmt.Errorf("%s: %w", name, ErrThumbnailMissing)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("open thumbnail: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, path, fmt.Errorf("decode thumbnail %s: %w", path, err)
	}
	return resize.Thumbnail(size, size, img, resize.Lanczos3), path, nil
}

// placeholderThumbnail is a grey size×size tile with a one-pixel border.
func placeholderThumbnail(size uint) image.Image {
	n := int(size)
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBorder}, image.Point{}, draw.Src)
	if n > 2 {
		draw.Draw(img, image.Rect(1, 1, n-1, n-1), &image.Uniform{C: placeholderFill}, image.Point{}, draw.Src)
	}
	return img
}
