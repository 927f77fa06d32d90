package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/model-picker/internal/catalog"
	"github.com/ytget/model-picker/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	assetDirEntry    *widget.Entry
	extensionEntry   *widget.Entry
	policySelect     *widget.Select
	thumbnailEntry   *widget.Entry
	maxParallelEntry *widget.Entry
	horizontalCheck  *widget.Check
	verticalCheck    *widget.Check
	meshCheck        *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.assetDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	assetDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetDirEntry)

	sd.extensionEntry = widget.NewEntry()
	sd.extensionEntry.SetPlaceHolder(config.DefaultAssetExtension)

	policyOptions := []string{}
	for _, p := range sd.settings.GetThumbnailPolicyOptions() {
		policyOptions = append(policyOptions, string(p))
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	sd.thumbnailEntry = widget.NewEntry()
	sd.thumbnailEntry.SetPlaceHolder(strconv.Itoa(config.MinThumbnailSize) + "-" + strconv.Itoa(config.MaxThumbnailSize))

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-16")

	sd.horizontalCheck = widget.NewCheck(t(KeyDetectHorizontal), nil)
	sd.verticalCheck = widget.NewCheck(t(KeyDetectVertical), nil)
	sd.meshCheck = widget.NewCheck(t(KeyMeshReconstruct), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(t(KeyAssetDirectory), assetDirRow),
		widget.NewFormItem(t(KeyAssetExtension), sd.extensionEntry),
		widget.NewFormItem(t(KeyThumbnailPolicy), sd.policySelect),
		widget.NewFormItem(t(KeyThumbnailSize), sd.thumbnailEntry),
		widget.NewFormItem(t(KeyMaxParallel), sd.maxParallelEntry),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(
		form,
		widget.NewSeparator(),
		sd.horizontalCheck,
		sd.verticalCheck,
		sd.meshCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetDirEntry.SetText(sd.settings.GetAssetDirectory())
	sd.extensionEntry.SetText(sd.settings.GetAssetExtension())
	sd.policySelect.SetSelected(string(sd.settings.GetThumbnailPolicy()))
	sd.thumbnailEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailSize()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelLoads()))
	sd.horizontalCheck.SetChecked(sd.settings.GetDetectHorizontalPlanes())
	sd.verticalCheck.SetChecked(sd.settings.GetDetectVerticalPlanes())
	sd.meshCheck.SetChecked(sd.settings.GetMeshReconstruction())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values to settings. Blank or malformed numbers keep the stored value.
func (sd *SettingsDialog) apply() {
	sd.settings.SetAssetDirectory(sd.assetDirEntry.Text)
	sd.settings.SetAssetExtension(sd.extensionEntry.Text)

	if sd.policySelect.Selected != "" {
		sd.settings.SetThumbnailPolicy(catalog.ThumbnailPolicy(sd.policySelect.Selected))
	}

	if size, err := strconv.Atoi(sd.thumbnailEntry.Text); err == nil {
		sd.settings.SetThumbnailSize(size)
	}

	if maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text); err == nil {
		sd.settings.SetMaxParallelLoads(maxParallel)
	}

	sd.settings.SetDetectHorizontalPlanes(sd.horizontalCheck.Checked)
	sd.settings.SetDetectVerticalPlanes(sd.verticalCheck.Checked)
	sd.settings.SetMeshReconstruction(sd.meshCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
