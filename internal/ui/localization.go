package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyRefresh           = "refresh"
	KeyReveal            = "reveal"
	KeyCategory          = "category"
	KeyBaseDirectory     = "base_directory"
	KeyManifestPath      = "manifest_path"
	KeyBuiltInManifest   = "built_in_manifest"
	KeyAutoRefresh       = "auto_refresh"
	KeyResourceSettings  = "resource_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyNoFiles           = "no_files"
	KeySelectFile        = "select_file"
	KeyFilesCount        = "files_count"
	KeyPlayingExternally = "playing_externally"
	KeyOpenedExternally  = "opened_externally"
	KeyVersion           = "version"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Offline Survival Resources",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyRefresh:           "Refresh",
		KeyReveal:            "Show in File Manager",
		KeyCategory:          "Category",
		KeyBaseDirectory:     "Resource Directory",
		KeyManifestPath:      "Manifest File",
		KeyBuiltInManifest:   "Built-in manifest",
		KeyAutoRefresh:       "Refresh listings when files change",
		KeyResourceSettings:  "Resources",
		KeyInterfaceSettings: "Interface",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyErrorOpeningFile:  "Error opening file",
		KeyNoFiles:           "No files yet. Run 'offgrid sync' to download resources.",
		KeySelectFile:        "Select a file to view it here",
		KeyFilesCount:        "%d files",
		KeyPlayingExternally: "Playing in external player: %s",
		KeyOpenedExternally:  "Opened with default application: %s",
		KeyVersion:           "Version %s",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Офлайн-ресурсы для выживания",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyRefresh:           "Обновить",
		KeyReveal:            "Показать в файловом менеджере",
		KeyCategory:          "Категория",
		KeyBaseDirectory:     "Папка ресурсов",
		KeyManifestPath:      "Файл манифеста",
		KeyBuiltInManifest:   "Встроенный манифест",
		KeyAutoRefresh:       "Обновлять списки при изменении файлов",
		KeyResourceSettings:  "Ресурсы",
		KeyInterfaceSettings: "Интерфейс",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyNoFiles:           "Файлов пока нет. Запустите 'offgrid sync' для загрузки ресурсов.",
		KeySelectFile:        "Выберите файл для просмотра",
		KeyFilesCount:        "Файлов: %d",
		KeyPlayingExternally: "Воспроизведение во внешнем плеере: %s",
		KeyOpenedExternally:  "Открыто приложением по умолчанию: %s",
		KeyVersion:           "Версия %s",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Recursos de Sobrevivência Offline",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyRefresh:           "Atualizar",
		KeyReveal:            "Mostrar no Gerenciador de Arquivos",
		KeyCategory:          "Categoria",
		KeyBaseDirectory:     "Diretório de Recursos",
		KeyManifestPath:      "Arquivo de Manifesto",
		KeyBuiltInManifest:   "Manifesto embutido",
		KeyAutoRefresh:       "Atualizar listas quando arquivos mudarem",
		KeyResourceSettings:  "Recursos",
		KeyInterfaceSettings: "Interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyNoFiles:           "Nenhum arquivo ainda. Execute 'offgrid sync' para baixar os recursos.",
		KeySelectFile:        "Selecione um arquivo para visualizá-lo aqui",
		KeyFilesCount:        "%d arquivos",
		KeyPlayingExternally: "Reproduzindo no player externo: %s",
		KeyOpenedExternally:  "Aberto com o aplicativo padrão: %s",
		KeyVersion:           "Versão %s",
	}
}
