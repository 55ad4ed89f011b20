package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/offgrid/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseDirEntry   *widget.Entry
	manifestEntry  *widget.Entry
	languageSelect *widget.Select
	autoRefresh    *widget.Check
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

	// Resource directory selection
	sd.baseDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	baseDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.baseDirEntry)

	// Manifest override, empty means built-in
	sd.manifestEntry = widget.NewEntry()
	sd.manifestEntry.SetPlaceHolder(t(KeyBuiltInManifest))
	browseManifestBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseManifest)
	manifestRow := container.NewBorder(nil, nil, nil, browseManifestBtn, sd.manifestEntry)

	// Language selection
	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRefresh = widget.NewCheck(t(KeyAutoRefresh), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyResourceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyBaseDirectory)+":"),
		baseDirRow,

		widget.NewLabel(t(KeyManifestPath)+":"),
		manifestRow,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
		sd.autoRefresh,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseDirEntry.SetText(sd.settings.GetBaseDirectory())
	sd.manifestEntry.SetText(sd.settings.GetManifestPath())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRefresh.SetChecked(sd.settings.GetAutoRefresh())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.baseDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseManifest handles manifest file browsing
func (sd *SettingsDialog) onBrowseManifest() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.manifestEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
}

func (sd *SettingsDialog) save() {
	if dir := sd.baseDirEntry.Text; dir != "" {
		sd.settings.SetBaseDirectory(dir)
	}

	// Empty clears the override
	sd.settings.SetManifestPath(sd.manifestEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoRefresh(sd.autoRefresh.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
