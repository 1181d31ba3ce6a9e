package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDownload          = "download"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyCopyPath          = "copy_path"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyPicturesDirectory = "pictures_directory"
	KeyOutputFileName    = "output_file_name"
	KeyJPEGQuality       = "jpeg_quality"
	KeyExecutionMode     = "execution_mode"
	KeyMaxParallel       = "max_parallel"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyDownloading       = "downloading"
	KeySaving            = "saving"
	KeyImageSaved        = "image_saved"
	KeyDownloadError     = "download_error"
	KeySaveError         = "save_error"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyInvalidURL        = "invalid_url"
	KeyTaskAdded         = "task_added"
	KeyPathCopied        = "path_copied"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Downloader",
		KeyDownload:          "Download image",
		KeyOpen:              "Open",
		KeyReveal:            "Reveal",
		KeyCopyPath:          "Copy path",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyPicturesDirectory: "Pictures Directory",
		KeyOutputFileName:    "File Name",
		KeyJPEGQuality:       "JPEG Quality (1-100)",
		KeyExecutionMode:     "Run Downloads",
		KeyMaxParallel:       "Max Parallel Downloads (queue)",
		KeyAutoReveal:        "Reveal saved image",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter image URL (https://...)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloading:       "Downloading image...",
		KeySaving:            "Saving image...",
		KeyImageSaved:        "Image downloaded and saved",
		KeyDownloadError:     "Image download error",
		KeySaveError:         "Image save error",
		KeyErrorOpeningFile:  "Error opening file",
		KeyInvalidURL:        "URL must start with http:// or https://",
		KeyTaskAdded:         "Task added to queue",
		KeyPathCopied:        "Path copied to clipboard",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик изображений",
		KeyDownload:          "Загрузить изображение",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать",
		KeyCopyPath:          "Копировать путь",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyPicturesDirectory: "Папка изображений",
		KeyOutputFileName:    "Имя файла",
		KeyJPEGQuality:       "Качество JPEG (1-100)",
		KeyExecutionMode:     "Запуск загрузок",
		KeyMaxParallel:       "Макс. параллельных (очередь)",
		KeyAutoReveal:        "Показывать сохранённое изображение",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Введите URL изображения (https://...)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloading:       "Загрузка изображения...",
		KeySaving:            "Сохранение изображения...",
		KeyImageSaved:        "Изображение загружено и сохранено",
		KeyDownloadError:     "Ошибка загрузки изображения",
		KeySaveError:         "Ошибка сохранения изображения",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyInvalidURL:        "URL должен начинаться с http:// или https://",
		KeyTaskAdded:         "Задача добавлена в очередь",
		KeyPathCopied:        "Путь скопирован",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Baixador de Imagens",
		KeyDownload:          "Baixar imagem",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar",
		KeyCopyPath:          "Copiar caminho",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyPicturesDirectory: "Diretório de Imagens",
		KeyOutputFileName:    "Nome do Arquivo",
		KeyJPEGQuality:       "Qualidade JPEG (1-100)",
		KeyExecutionMode:     "Executar Downloads",
		KeyMaxParallel:       "Max Downloads Paralelos (fila)",
		KeyAutoReveal:        "Mostrar imagem salva",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Digite a URL da imagem (https://...)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloading:       "Baixando imagem...",
		KeySaving:            "Salvando imagem...",
		KeyImageSaved:        "Imagem baixada e salva",
		KeyDownloadError:     "Erro ao baixar imagem",
		KeySaveError:         "Erro ao salvar imagem",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyInvalidURL:        "A URL deve começar com http:// ou https://",
		KeyTaskAdded:         "Tarefa adicionada à fila",
		KeyPathCopied:        "Caminho copiado",
	}
}
