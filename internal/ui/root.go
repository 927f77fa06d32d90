package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/model-picker/internal/catalog"
	"github.com/ytget/model-picker/internal/config"
	"github.com/ytget/model-picker/internal/loader"
	"github.com/ytget/model-picker/internal/model"
	"github.com/ytget/model-picker/internal/placement"
	"github.com/ytget/model-picker/internal/platform"
	"github.com/ytget/model-picker/internal/presenter"
	"github.com/ytget/model-picker/internal/scene"
)

// RootUI represents the main UI structure. It renders controller state and
// turns user input into controller events; it owns no placement state itself.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	catalog    *catalog.Catalog
	controller *placement.Controller
	presenter  *presenter.Presenter
	loads      loader.AssetLoader

	sceneView *SceneView
	picker    *ModelPicker
	buttons   *PlacementButtons

	state       model.PlacementState
	unsubscribe func()
}

// NewRootUI creates and initializes the main UI. It registers for controller
// snapshots, load results and placement results, so it should be created
// before the asset loads start.
func NewRootUI(
	window fyne.Window,
	app fyne.App,
	settings *config.Settings,
	cat *catalog.Catalog,
	controller *placement.Controller,
	scenePresenter *presenter.Presenter,
	loads loader.AssetLoader,
) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		catalog:      cat,
		controller:   controller,
		presenter:    scenePresenter,
		loads:        loads,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	ui.loads.SetUpdateCallback(ui.onModelUpdate)
	ui.presenter.SetPlacedCallback(ui.onModelPlaced)
	ui.presenter.SetFailureCallback(ui.onPlacementFailed)
	ui.unsubscribe = ui.controller.Subscribe(ui.onStateChange)

	log.Printf("ui: initialized with %d models", cat.Len())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.sceneView = NewSceneView(ui.localization, ui.onGesture)
	ui.sceneView.SetTracking(ui.presenter.Config())
	for _, a := range ui.presenter.Placements() {
		ui.sceneView.AddPlacement(anchorName(a), a)
	}

	tileSize := ui.mobile.TileSize(ui.settings.GetThumbnailSize())
	ui.picker = NewModelPicker(ui.catalog.Models(), tileSize, ui.onSelect)
	ui.picker.SetEmptyText(ui.emptyCatalogText())

	ui.buttons = NewPlacementButtons(ui.onCancel, ui.onConfirm)
	ui.buttons.Container().Hide()

	overlay := container.NewPadded(container.NewStack(ui.picker.Container(), ui.buttons.Container()))

	content := container.NewBorder(
		nil,                      // top
		overlay,                  // bottom
		nil,                      // left
		nil,                      // right
		ui.sceneView.Container(), // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openAssetsItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenAssets), ui.onOpenAssets)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, openAssetsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.picker.SetEmptyText(ui.emptyCatalogText())
	ui.sceneView.RefreshTexts()
}

func (ui *RootUI) emptyCatalogText() string {
	return ui.localization.GetTextf(KeyNoModels, map[string]interface{}{
		"Dir": ui.settings.GetAssetDirectory(),
	})
}

// onStateChange receives controller snapshots, possibly off the UI goroutine
func (ui *RootUI) onStateChange(s model.PlacementState) {
	fyne.Do(func() {
		ui.render(s)
	})
}

// render shows the picker while browsing and the placement buttons while placing
func (ui *RootUI) render(s model.PlacementState) {
	ui.state = s

	if s.PlacementActive && s.Selected != nil {
		ui.picker.SetSelected(s.Selected)
		ui.picker.Container().Hide()
		ui.buttons.Container().Show()
		ui.sceneView.SetPlacing(s.Selected.Name)
		return
	}

	ui.picker.SetSelected(nil)
	ui.buttons.Container().Hide()
	ui.picker.Container().Show()
	ui.sceneView.SetPlacing("")
}

// onSelect handles a tap on a thumbnail
func (ui *RootUI) onSelect(d *model.ModelDescriptor) {
	if err := ui.controller.Select(d); err != nil {
		log.Printf("ui: select %s: %v", d.Name, err)
	}
}

// onCancel handles the ✕ button
func (ui *RootUI) onCancel() {
	if err := ui.controller.Cancel(); err != nil {
		log.Printf("ui: cancel: %v", err)
	}
}

// onConfirm handles the ✓ button
func (ui *RootUI) onConfirm() {
	if err := ui.controller.Confirm(); err != nil {
		log.Printf("ui: confirm: %v", err)
	}
}

// onGesture handles gestures over the scene view
func (ui *RootUI) onGesture(g GestureType) {
	if g == GestureSwipeDown && ui.state.PlacementActive {
		ui.onCancel()
	}
}

// onModelUpdate is called by the load service when a model finishes loading
func (ui *RootUI) onModelUpdate(d *model.ModelDescriptor) {
	fyne.Do(func() {
		ui.picker.UpdateModel(d)
		if d.Status() == model.LoadStatusFailed {
			ui.sceneView.ShowNotification(
				ui.localization.GetTextf(KeyModelLoadFailed, map[string]interface{}{"Name": d.Name}), true)
		}
	})
}

// onModelPlaced is called by the presenter after an insertion
func (ui *RootUI) onModelPlaced(d *model.ModelDescriptor, a *scene.Anchor) {
	fyne.Do(func() {
		ui.sceneView.AddPlacement(d.Name, a)
		ui.sceneView.ShowNotification(
			ui.localization.GetTextf(KeyModelPlaced, map[string]interface{}{"Name": d.Name}), false)
	})
}

// onPlacementFailed is called by the presenter when a confirmed model could not be inserted
func (ui *RootUI) onPlacementFailed(d *model.ModelDescriptor, err error) {
	key := KeyPlaceFailed
	if errors.Is(err, presenter.ErrEntityNotLoaded) && d.Status() == model.LoadStatusPending {
		key = KeyModelLoading
	}
	fyne.Do(func() {
		ui.sceneView.ShowNotification(
			ui.localization.GetTextf(key, map[string]interface{}{"Name": d.Name}), true)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies the settings that take effect without a restart
func (ui *RootUI) onSettingsSaved() {
	ui.loads.SetMaxParallelLoads(ui.settings.GetMaxParallelLoads())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	ui.sceneView.ShowNotification(ui.localization.GetText(KeySettingsSaved), false)
}

// onOpenAssets reveals the asset directory in the file manager
func (ui *RootUI) onOpenAssets() {
	dir := ui.settings.GetAssetDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	if err := platform.OpenDirectoryInManager(dir); err != nil {
		log.Printf("ui: open %s: %v", dir, err)
		ui.sceneView.ShowNotification(ui.localization.GetText(KeyErrorOpeningAsset)+": "+err.Error(), true)
	}
}

// State returns the last rendered controller snapshot
func (ui *RootUI) State() model.PlacementState {
	return ui.state
}

// Close detaches the UI from the controller
func (ui *RootUI) Close() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
		ui.unsubscribe = nil
	}
}

// anchorName returns the name of the first entity on a, or its ID.
func anchorName(a *scene.Anchor) string {
	if len(a.Children) > 0 {
		return a.Children[0].Name
	}
	return a.ID
}
