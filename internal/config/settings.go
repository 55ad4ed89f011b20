package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/offgrid/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBaseDir      = "base_directory"
	KeyManifestPath = "manifest_path"
	KeyLastCategory = "last_category"
	KeyLanguage     = "app_language"
	KeyAutoRefresh  = "auto_refresh"
)

// Default values
const (
	DefaultCategory    = "Medical"
	DefaultLanguage    = "system"
	DefaultAutoRefresh = true
)

// Settings manages browser configuration stored in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the configured resource directory
func (s *Settings) GetBaseDirectory() string {
	dir := s.app.Preferences().String(KeyBaseDir)
	if dir == "" {
		defaultDir := platform.DefaultBaseDir()
		s.SetBaseDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetBaseDirectory sets the resource directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDir, dir)
}

// GetManifestPath returns the manifest override path, empty for the built-in manifest
func (s *Settings) GetManifestPath() string {
	return s.app.Preferences().String(KeyManifestPath)
}

// SetManifestPath sets the manifest override path
func (s *Settings) SetManifestPath(path string) {
	s.app.Preferences().SetString(KeyManifestPath, path)
}

// GetLastCategory returns the category selected when the app was last closed
func (s *Settings) GetLastCategory() string {
	return s.app.Preferences().StringWithFallback(KeyLastCategory, DefaultCategory)
}

// SetLastCategory remembers the selected category
func (s *Settings) SetLastCategory(category string) {
	s.app.Preferences().SetString(KeyLastCategory, category)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRefresh returns whether file lists follow changes on disk
func (s *Settings) GetAutoRefresh() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRefresh, DefaultAutoRefresh)
}

// SetAutoRefresh sets whether file lists follow changes on disk
func (s *Settings) SetAutoRefresh(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoRefresh, enabled)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
