package ui

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/offgrid/internal/browser"
	"github.com/ytget/offgrid/internal/config"
	"github.com/ytget/offgrid/internal/model"
)

type stubRenderer struct{ calls int }

func (r *stubRenderer) Render(string) ([]image.Image, error) {
	r.calls++
	return []image.Image{image.NewRGBA(image.Rect(0, 0, 40, 60))}, nil
}

type stubPlayer struct{}

func (stubPlayer) Play(string) error { return nil }

type uiFixture struct {
	ui       *RootUI
	base     string
	renderer *stubRenderer
	opened   []string
}

func newUIFixture(t *testing.T) *uiFixture {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	f := &uiFixture{base: t.TempDir(), renderer: &stubRenderer{}}
	for _, rel := range []string{"Medical/burns.pdf", "Medical/notes.txt", "Hunting/snares.mp4"} {
		path := filepath.Join(f.base, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(rel), 0644))
	}

	settings := config.NewSettings(app)
	settings.SetBaseDirectory(f.base)
	settings.SetAutoRefresh(false)

	factory := func(baseDir, _ string) (*browser.Browser, error) {
		catalog := browser.NewCatalog(baseDir, []model.BrowseCategory{
			{Name: "Hunting", Dir: "Hunting"},
			{Name: "Medical", Dir: "Medical"},
		})
		dispatcher := browser.NewDispatcher(f.renderer, stubPlayer{}, func(path string) error {
			f.opened = append(f.opened, path)
			return nil
		})
		return browser.New(catalog, dispatcher), nil
	}

	logger, _ := logtest.NewNullLogger()
	ui, err := NewRootUI(app.NewWindow("test"), app, factory, logger, "1.2.3")
	require.NoError(t, err)
	f.ui = ui
	return f
}

func TestNewRootUI_SelectsPreferredCategory(t *testing.T) {
	f := newUIFixture(t)

	state := f.ui.State()
	assert.Equal(t, "Medical", state.Category)
	assert.Len(t, state.Files, 2)
	assert.Equal(t, "Medical", f.ui.categorySelect.Selected)
	assert.Equal(t, []string{"Hunting", "Medical"}, f.ui.categorySelect.Options)
	assert.Contains(t, f.ui.footerLabel.Text, "1.2.3")
}

func TestRootUI_OpenPDFRendersPages(t *testing.T) {
	f := newUIFixture(t)

	f.ui.apply(browser.FileSelected{Path: filepath.Join(f.base, "Medical", "burns.pdf")})

	assert.Equal(t, 1, f.renderer.calls)
	assert.Empty(t, f.opened)
	assert.Len(t, f.ui.viewer.Objects, 1)
}

func TestRootUI_OpenTextUsesDefaultApp(t *testing.T) {
	f := newUIFixture(t)

	txt := filepath.Join(f.base, "Medical", "notes.txt")
	f.ui.apply(browser.FileSelected{Path: txt})

	assert.Equal(t, []string{txt}, f.opened)
	assert.Zero(t, f.renderer.calls)
	assert.Empty(t, f.ui.viewer.Objects)
}

func TestRootUI_CategorySwitchRemembersSelection(t *testing.T) {
	f := newUIFixture(t)

	f.ui.categorySelect.SetSelected("Hunting")

	assert.Equal(t, "Hunting", f.ui.State().Category)
	assert.Len(t, f.ui.State().Files, 1)
	assert.Equal(t, "Hunting", f.ui.settings.GetLastCategory())
}

func TestNewRootUI_FactoryError(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	logger, _ := logtest.NewNullLogger()
	_, err := NewRootUI(app.NewWindow("test"), app, func(string, string) (*browser.Browser, error) {
		return nil, errors.New("invalid manifest")
	}, logger, "dev")
	assert.Error(t, err)
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Settings", l.GetText(KeySettings))

	l.SetLanguage("ru")
	assert.Equal(t, "Настройки", l.GetText(KeySettings))

	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage(), "unknown language is ignored")

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		assert.Len(t, l.texts[lang], len(l.texts["en"]), lang)
	}
}
