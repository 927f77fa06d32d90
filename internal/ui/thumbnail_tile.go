package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/model-picker/internal/model"
)

// ThumbnailTile shows one catalog entry in the model picker
type ThumbnailTile struct {
	widget.BaseWidget

	descriptor *model.ModelDescriptor
	size       fyne.Size
	selected   bool

	// UI components
	image     *canvas.Image
	nameLabel *widget.Label
	outline   *canvas.Rectangle

	onTapped func(*model.ModelDescriptor)
}

var _ fyne.Tappable = (*ThumbnailTile)(nil)

// NewThumbnailTile creates a tile for d with the given on-screen size
func NewThumbnailTile(d *model.ModelDescriptor, size fyne.Size, onTapped func(*model.ModelDescriptor)) *ThumbnailTile {
	tt := &ThumbnailTile{
		descriptor: d,
		size:       size,
		onTapped:   onTapped,
	}
	tt.ExtendBaseWidget(tt)
	tt.createUI()
	tt.updateFromDescriptor()
	return tt
}

// Descriptor returns the model shown by the tile
func (tt *ThumbnailTile) Descriptor() *model.ModelDescriptor {
	return tt.descriptor
}

// SetSelected toggles the selection outline
func (tt *ThumbnailTile) SetSelected(selected bool) {
	if tt.selected == selected {
		return
	}
	tt.selected = selected
	tt.Refresh()
}

// Selected reports whether the tile is highlighted
func (tt *ThumbnailTile) Selected() bool {
	return tt.selected
}

// Disabled reports whether the model can no longer be selected
func (tt *ThumbnailTile) Disabled() bool {
	return !tt.descriptor.Available()
}

// Tapped selects the model unless its load failed
func (tt *ThumbnailTile) Tapped(*fyne.PointEvent) {
	if tt.Disabled() || tt.onTapped == nil {
		return
	}
	tt.onTapped(tt.descriptor)
}

// Refresh re-reads the descriptor state
func (tt *ThumbnailTile) Refresh() {
	tt.updateFromDescriptor()
	tt.BaseWidget.Refresh()
}

func (tt *ThumbnailTile) createUI() {
	tt.image = canvas.NewImageFromImage(tt.descriptor.Thumbnail)
	tt.image.FillMode = canvas.ImageFillContain
	tt.image.ScaleMode = canvas.ImageScaleSmooth

	tt.nameLabel = widget.NewLabel(tt.descriptor.Name)
	tt.nameLabel.Alignment = fyne.TextAlignCenter
	tt.nameLabel.Truncation = fyne.TextTruncateEllipsis
	tt.nameLabel.SizeName = theme.SizeNameCaptionText

	tt.outline = canvas.NewRectangle(color.Transparent)
	tt.outline.StrokeWidth = TileSelectedWidth
	tt.outline.CornerRadius = theme.InputRadiusSize()
}

func (tt *ThumbnailTile) updateFromDescriptor() {
	if tt.image == nil {
		return
	}

	switch {
	case tt.Disabled():
		tt.image.Translucency = 1 - DisabledOpacity
		tt.nameLabel.Importance = widget.LowImportance
	case tt.descriptor.ThumbnailMissing:
		tt.image.Translucency = 1 - PlaceholderOpacity
		tt.nameLabel.Importance = widget.MediumImportance
	default:
		tt.image.Translucency = 0
		tt.nameLabel.Importance = widget.MediumImportance
	}

	if tt.selected {
		tt.outline.StrokeColor = theme.Color(theme.ColorNamePrimary)
	} else {
		tt.outline.StrokeColor = color.Transparent
	}

	tt.image.Refresh()
	tt.nameLabel.Refresh()
	tt.outline.Refresh()
}

// CreateRenderer creates the widget renderer
func (tt *ThumbnailTile) CreateRenderer() fyne.WidgetRenderer {
	imageSide := tt.size.Width - 2*TilePadding
	tt.image.SetMinSize(fyne.NewSize(imageSide, imageSide))

	body := container.NewBorder(nil, tt.nameLabel, nil, nil, tt.image)
	content := container.NewStack(tt.outline, container.NewPadded(body))

	return &thumbnailTileRenderer{tile: tt, content: content}
}

// thumbnailTileRenderer renders the tile at its fixed size
type thumbnailTileRenderer struct {
	tile    *ThumbnailTile
	content *fyne.Container
}

func (r *thumbnailTileRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *thumbnailTileRenderer) MinSize() fyne.Size {
	return r.tile.size
}

func (r *thumbnailTileRenderer) Refresh() {
	r.content.Refresh()
}

func (r *thumbnailTileRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *thumbnailTileRenderer) Destroy() {}
