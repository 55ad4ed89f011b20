package ui

import (
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/offgrid/internal/browser"
	"github.com/ytget/offgrid/internal/config"
	"github.com/ytget/offgrid/internal/platform"
)

// BrowserFactory builds a browser for the configured resource directory and manifest
type BrowserFactory func(baseDir, manifestPath string) (*browser.Browser, error)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	factory      BrowserFactory
	browser      *browser.Browser
	watcher      *browser.Watcher
	log          log.FieldLogger
	version      string

	state browser.State

	categorySelect *widget.Select
	fileList       *widget.List
	viewer         *fyne.Container
	viewerScroll   *container.Scroll
	statusLabel    *widget.Label
	footerLabel    *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, factory BrowserFactory, logger log.FieldLogger, version string) (*RootUI, error) {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		factory:      factory,
		log:          logger,
		version:      version,
	}

	if err := ui.loadBrowser(); err != nil {
		return nil, err
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.selectInitialCategory()

	window.SetOnClosed(ui.onClosed)
	logger.WithField("base", ui.browser.Catalog().BaseDir()).Info("browser started")
	return ui, nil
}

// loadBrowser (re)builds the browser from the current settings
func (ui *RootUI) loadBrowser() error {
	b, err := ui.factory(ui.settings.GetBaseDirectory(), ui.settings.GetManifestPath())
	if err != nil {
		return fmt.Errorf("failed to load browser: %w", err)
	}
	ui.browser = b
	ui.state = browser.State{}
	return nil
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.categorySelect = widget.NewSelect(ui.browser.Catalog().Categories(), func(name string) {
		ui.apply(browser.CategorySelected{Name: name})
	})
	// Assigned directly so a rebuilt select does not re-fire OnChanged
	ui.categorySelect.Selected = ui.state.Category

	refreshBtn := widget.NewButton(IconRefresh, ui.onRefresh)
	revealBtn := widget.NewButton(IconFolder, ui.onReveal)
	header := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyCategory)+":"),
		container.NewHBox(refreshBtn, revealBtn),
		ui.categorySelect,
	)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.fileList = widget.NewList(
		func() int { return len(ui.state.Files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		ui.updateFileItem,
	)
	ui.fileList.OnSelected = func(id widget.ListItemID) {
		if id < 0 || id >= len(ui.state.Files) {
			return
		}
		ui.apply(browser.FileSelected{Path: ui.state.Files[id]})
	}

	ui.viewer = container.NewVBox()
	ui.viewerScroll = container.NewVScroll(ui.viewer)
	ui.viewerScroll.SetMinSize(fyne.NewSize(ViewerMinWidth, 0))

	split := container.NewHSplit(ui.fileList, ui.viewerScroll)
	split.SetOffset(SplitOffset)

	ui.footerLabel = widget.NewLabel(fmt.Sprintf(ui.localization.GetText(KeyVersion), ui.version))
	ui.footerLabel.Alignment = fyne.TextAlignTrailing

	content := container.NewBorder(
		container.NewVBox(header, ui.statusLabel),
		ui.footerLabel,
		nil, nil,
		split,
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	fileMenu := fyne.NewMenu(t(KeyFile),
		fyne.NewMenuItem(t(KeySettings), ui.onShowSettings),
		fyne.NewMenuItem(t(KeyRefresh), ui.onRefresh),
		fyne.NewMenuItem(t(KeyReveal), ui.onReveal),
	)

	languageMenu := fyne.NewMenu(t(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		item := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange switches the UI language and rebuilds text-bearing widgets
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.render()
}

// selectInitialCategory restores the last category, else the preferred one
func (ui *RootUI) selectInitialCategory() {
	name := ui.browser.Catalog().InitialCategory(ui.settings.GetLastCategory())
	if name == "" {
		ui.render()
		return
	}
	ui.categorySelect.SetSelected(name)
}

// apply feeds an event into the browser and renders the result. Errors
// keep the previous state and are shown in a dialog.
func (ui *RootUI) apply(event browser.Event) {
	next, err := ui.browser.Transition(ui.state, event)
	if err != nil {
		ui.log.WithError(err).Warn("browser action failed")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
		return
	}

	categoryChanged := next.Category != ui.state.Category
	ui.state = next

	if categoryChanged {
		ui.settings.SetLastCategory(next.Category)
		ui.fileList.UnselectAll()
		ui.watchCategory()
	}
	ui.render()
}

// render updates every widget from ui.state
func (ui *RootUI) render() {
	ui.fileList.Refresh()
	ui.viewer.RemoveAll()

	switch {
	case len(ui.state.Files) == 0:
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoFiles))
	case !ui.state.HasView():
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyFilesCount), len(ui.state.Files)) +
			MiddleDotSeparator + ui.localization.GetText(KeySelectFile))
	}

	if !ui.state.HasView() {
		ui.viewer.Refresh()
		return
	}

	view := ui.state.View
	switch view.Kind {
	case browser.ViewPDF:
		for _, page := range view.Pages {
			ui.viewer.Add(pageImage(page))
		}
		ui.statusLabel.SetText(IconPDF + " " + filepath.Base(view.Path) + MiddleDotSeparator + view.Info)
	case browser.ViewVideo:
		ui.statusLabel.SetText(IconVideo + " " + fmt.Sprintf(ui.localization.GetText(KeyPlayingExternally), view.Info))
	default:
		ui.statusLabel.SetText(IconFile + " " + fmt.Sprintf(ui.localization.GetText(KeyOpenedExternally), view.Info))
	}
	ui.viewer.Refresh()
	ui.viewerScroll.ScrollToTop()
}

// pageImage wraps a rendered page, keeping its aspect ratio
func pageImage(page image.Image) fyne.CanvasObject {
	img := canvas.NewImageFromImage(page)
	img.FillMode = canvas.ImageFillContain
	b := page.Bounds()
	img.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	return img
}

// updateFileItem shows the path relative to the category directory
func (ui *RootUI) updateFileItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.state.Files) {
		return
	}
	path := ui.state.Files[id]
	label := path
	if dir, err := ui.browser.Catalog().Dir(ui.state.Category); err == nil {
		if rel, err := filepath.Rel(dir, path); err == nil {
			label = rel
		}
	}
	item.(*widget.Label).SetText(fileIcon(path) + " " + label)
}

func fileIcon(path string) string {
	switch browser.KindOf(path) {
	case browser.ViewPDF:
		return IconPDF
	case browser.ViewVideo:
		return IconVideo
	default:
		return IconFile
	}
}

// watchCategory follows the selected category directory when auto-refresh is on
func (ui *RootUI) watchCategory() {
	if !ui.settings.GetAutoRefresh() || ui.state.Category == "" {
		return
	}

	if ui.watcher == nil {
		w, err := browser.NewWatcher(func() {
			fyne.Do(func() { ui.apply(browser.Refreshed{}) })
		}, RefreshDebounce, ui.log)
		if err != nil {
			ui.log.WithError(err).Warn("auto-refresh disabled")
			return
		}
		ui.watcher = w
	}

	dir, err := ui.browser.Catalog().Dir(ui.state.Category)
	if err != nil {
		return
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.log.WithError(err).WithField("dir", dir).Debug("cannot create category directory")
		return
	}
	if err := ui.watcher.Watch(dir); err != nil {
		ui.log.WithError(err).WithField("dir", dir).Warn("cannot watch category")
	}
}

// stopWatching closes the filesystem watcher if one is running
func (ui *RootUI) stopWatching() {
	if ui.watcher == nil {
		return
	}
	if err := ui.watcher.Close(); err != nil {
		ui.log.WithError(err).Debug("watcher close failed")
	}
	ui.watcher = nil
}

// onRefresh re-lists the current category
func (ui *RootUI) onRefresh() {
	ui.apply(browser.Refreshed{})
}

// onReveal shows the selected file, or the category directory, in the file manager
func (ui *RootUI) onReveal() {
	target := ui.state.Selected
	if target == "" {
		dir, err := ui.browser.Catalog().Dir(ui.state.Category)
		if err != nil {
			return
		}
		target = dir
	}

	if err := platform.OpenFileInManager(target); err != nil {
		ui.log.WithError(err).WithField("path", target).Warn("reveal failed")
		dialog.ShowError(err, ui.window)
	}
}

// onShowSettings shows the settings dialog and reloads the browser on save
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings
func (ui *RootUI) onSettingsSaved() {
	ui.stopWatching()
	if err := ui.loadBrowser(); err != nil {
		ui.log.WithError(err).Error("failed to apply settings")
		dialog.ShowError(err, ui.window)
		return
	}
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.setupUI()
	ui.selectInitialCategory()
	dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
}

// onClosed releases resources when the window closes
func (ui *RootUI) onClosed() {
	ui.stopWatching()
	ui.log.Info("browser closed")
}

// State returns the current browser state
func (ui *RootUI) State() browser.State {
	return ui.state
}
