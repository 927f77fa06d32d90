package ui

import (
	"context"
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/model-picker/internal/catalog"
	"github.com/ytget/model-picker/internal/config"
	"github.com/ytget/model-picker/internal/loader"
	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/placement"
	"github.com/ytget/model-picker/internal/presenter"
	"github.com/ytget/model-picker/internal/scene"
)

type stubLoader struct {
	fail map[string]bool
}

func (s stubLoader) Load(_ context.Context, path string) (*scene.Entity, error) {
	if s.fail[path] {
		return nil, errors.New("corrupt asset")
	}
	return scene.NewEntity(path), nil
}

type fixture struct {
	ui         *RootUI
	graph      *scene.Graph
	controller *placement.Controller
	presenter  *presenter.Presenter
	loads      *loader.Service
	models     map[string]*model.ModelDescriptor
}

func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")

	models := make(map[string]*model.ModelDescriptor, len(names))
	descriptors := make([]*model.ModelDescriptor, 0, len(names))
	for _, name := range names {
		d := model.NewModelDescriptor(name, name+".glb")
		d.Thumbnail = image.NewRGBA(image.Rect(0, 0, 8, 8))
		models[name] = d
		descriptors = append(descriptors, d)
	}

	graph := scene.NewGraph()
	p := presenter.New(graph, scene.NewWorldTrackingConfig())
	require.NoError(t, p.InitializeSession())
	controller := placement.NewController()
	p.Attach(controller)

	loads := loader.NewService(stubLoader{fail: map[string]bool{"broken.glb": true}}, 2)

	ui := NewRootUI(window, app, settings, catalog.NewCatalog(descriptors...), controller, p, loads)
	t.Cleanup(ui.Close)

	return &fixture{ui: ui, graph: graph, controller: controller, presenter: p, loads: loads, models: models}
}

func (f *fixture) load(names ...string) {
	var ds []*model.ModelDescriptor
	for _, n := range names {
		ds = append(ds, f.models[n])
	}
	f.loads.Start(context.Background(), ds)
	f.loads.Wait()
}

func (f *fixture) tile(t *testing.T, name string) *ThumbnailTile {
	t.Helper()
	tile, ok := f.ui.picker.Tile(f.models[name])
	require.True(t, ok)
	return tile
}

func TestRootUI_InitialBrowsing(t *testing.T) {
	f := newFixture(t, "chair", "lamp")

	assert.Len(t, f.ui.picker.Tiles(), 2)
	assert.True(t, f.ui.picker.Container().Visible())
	assert.True(t, f.ui.picker.scroll.Visible())
	assert.False(t, f.ui.picker.empty.Visible())
	assert.False(t, f.ui.buttons.Container().Visible())
	assert.Equal(t, model.PhaseBrowsing, f.ui.State().Phase())
}

func TestRootUI_SelectThenCancel(t *testing.T) {
	f := newFixture(t, "chair", "lamp")

	test.Tap(f.tile(t, "chair"))

	assert.Equal(t, model.PhasePlacing, f.ui.State().Phase())
	assert.Same(t, f.models["chair"], f.ui.State().Selected)
	assert.True(t, f.tile(t, "chair").Selected())
	assert.False(t, f.ui.picker.Container().Visible())
	assert.True(t, f.ui.buttons.Container().Visible())

	test.Tap(f.ui.buttons.CancelButton)

	assert.Equal(t, model.PhaseBrowsing, f.ui.State().Phase())
	assert.False(t, f.tile(t, "chair").Selected())
	assert.True(t, f.ui.picker.Container().Visible())
	assert.Empty(t, f.graph.Anchors())
}

func TestRootUI_ConfirmPlacesModel(t *testing.T) {
	f := newFixture(t, "chair", "lamp")
	f.load("chair", "lamp")

	test.Tap(f.tile(t, "lamp"))
	test.Tap(f.ui.buttons.ConfirmButton)

	require.Len(t, f.graph.Anchors(), 1)
	assert.Equal(t, "lamp.glb", f.graph.Anchors()[0].Children[0].Name)
	assert.Nil(t, f.controller.State().Confirmed)
	assert.Equal(t, model.PhaseBrowsing, f.ui.State().Phase())
	assert.Equal(t, 1, f.ui.sceneView.PlacementCount())
	assert.Equal(t, "Placed lamp", f.ui.sceneView.Notification())
}

func TestRootUI_ConfirmBeforeLoadReportsFailure(t *testing.T) {
	f := newFixture(t, "chair")

	test.Tap(f.tile(t, "chair"))
	test.Tap(f.ui.buttons.ConfirmButton)

	assert.Empty(t, f.graph.Anchors())
	assert.Nil(t, f.controller.State().Confirmed)
	assert.Equal(t, "chair is still loading", f.ui.sceneView.Notification())
}

func TestRootUI_FailedLoadDisablesTile(t *testing.T) {
	f := newFixture(t, "broken", "lamp")
	f.load("broken", "lamp")

	broken := f.tile(t, "broken")
	assert.True(t, broken.Disabled())
	assert.False(t, f.tile(t, "lamp").Disabled())
	assert.Equal(t, "Failed to load broken", f.ui.sceneView.Notification())

	test.Tap(broken)
	assert.Equal(t, model.PhaseBrowsing, f.ui.State().Phase())
}

func TestRootUI_SwipeDownCancels(t *testing.T) {
	f := newFixture(t, "chair")

	test.Tap(f.tile(t, "chair"))
	require.Equal(t, model.PhasePlacing, f.ui.State().Phase())

	f.ui.onGesture(GestureSwipeRight)
	assert.Equal(t, model.PhasePlacing, f.ui.State().Phase())

	f.ui.onGesture(GestureSwipeDown)
	assert.Equal(t, model.PhaseBrowsing, f.ui.State().Phase())
}

func TestRootUI_EmptyCatalog(t *testing.T) {
	f := newFixture(t)

	assert.Empty(t, f.ui.picker.Tiles())
	assert.Contains(t, f.ui.picker.empty.Text, "No models found")
	assert.True(t, f.ui.picker.empty.Visible())
	assert.False(t, f.ui.picker.scroll.Visible())
}

func TestRootUI_LanguageChange(t *testing.T) {
	f := newFixture(t, "chair")

	f.ui.onLanguageChange("pt")

	assert.Equal(t, "pt", f.ui.settings.GetLanguage())
	assert.Equal(t, "Seletor de Modelos", f.ui.window.Title())
}

func TestRootUI_TileSizeHonorsTouchTarget(t *testing.T) {
	f := newFixture(t, "chair")

	size := f.ui.mobile.TileSize(8)
	assert.GreaterOrEqual(t, size.Width, MinTouchTargetSize)
	assert.Equal(t, fyne.NewSize(MinTouchTargetSize+2*TilePadding, MinTouchTargetSize+TileLabelHeight+2*TilePadding), size)
}

func TestRootUI_SettingsSavedAppliesParallelLoads(t *testing.T) {
	f := newFixture(t, "chair")
	require.Equal(t, 2, f.loads.MaxParallelLoads())

	f.ui.settings.SetMaxParallelLoads(7)
	f.ui.settings.SetLanguage("pt")
	f.ui.onSettingsSaved()

	assert.Equal(t, 7, f.loads.MaxParallelLoads())
	assert.Equal(t, "Seletor de Modelos", f.ui.window.Title())
}
