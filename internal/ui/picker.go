package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/model-picker/internal/model"
)

// ModelPicker is the horizontal thumbnail strip shown while browsing
type ModelPicker struct {
	tiles    []*ThumbnailTile
	byModel  map[*model.ModelDescriptor]*ThumbnailTile
	row      *fyne.Container
	empty    *widget.Label
	scroll   *container.Scroll
	content  *fyne.Container
	onSelect func(*model.ModelDescriptor)
}

// NewModelPicker creates a picker over models. tileSize is the on-screen tile size.
func NewModelPicker(models []*model.ModelDescriptor, tileSize fyne.Size, onSelect func(*model.ModelDescriptor)) *ModelPicker {
	mp := &ModelPicker{
		byModel:  make(map[*model.ModelDescriptor]*ThumbnailTile, len(models)),
		onSelect: onSelect,
	}

	mp.row = container.NewHBox()
	for _, d := range models {
		tile := NewThumbnailTile(d, tileSize, mp.onTileTapped)
		mp.tiles = append(mp.tiles, tile)
		mp.byModel[d] = tile
		mp.row.Add(tile)
	}

	mp.empty = widget.NewLabel("")
	mp.empty.Alignment = fyne.TextAlignCenter
	mp.empty.Wrapping = fyne.TextWrapWord

	mp.scroll = container.NewHScroll(mp.row)
	mp.scroll.SetMinSize(fyne.NewSize(tileSize.Width, tileSize.Height))
	if len(models) == 0 {
		mp.scroll.Hide()
	} else {
		mp.empty.Hide()
	}

	mp.content = container.NewStack(mp.scroll, mp.empty)
	return mp
}

func (mp *ModelPicker) onTileTapped(d *model.ModelDescriptor) {
	if mp.onSelect != nil {
		mp.onSelect(d)
	}
}

// Container returns the picker's canvas object
func (mp *ModelPicker) Container() *fyne.Container {
	return mp.content
}

// SetEmptyText sets the message shown when there are no models
func (mp *ModelPicker) SetEmptyText(text string) {
	mp.empty.SetText(text)
}

// Tiles returns the tiles in catalog order
func (mp *ModelPicker) Tiles() []*ThumbnailTile {
	return mp.tiles
}

// Tile returns the tile for d
func (mp *ModelPicker) Tile(d *model.ModelDescriptor) (*ThumbnailTile, bool) {
	tile, ok := mp.byModel[d]
	return tile, ok
}

// SetSelected highlights d's tile; nil clears the highlight
func (mp *ModelPicker) SetSelected(d *model.ModelDescriptor) {
	for _, tile := range mp.tiles {
		tile.SetSelected(tile.Descriptor() == d)
	}
}

// UpdateModel refreshes the tile of a model whose load state changed
func (mp *ModelPicker) UpdateModel(d *model.ModelDescriptor) {
	if tile, ok := mp.byModel[d]; ok {
		tile.Refresh()
	}
}
