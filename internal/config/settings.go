package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/img-fetcher/internal/fetch"
	"github.com/ytget/img-fetcher/internal/platform"
)

// ExecutionMode selects how a download click runs the pipeline
type ExecutionMode string

const (
	// ModeDirect runs the pipeline on a goroutine started by the click
	ModeDirect ExecutionMode = "direct"
	// ModeQueue submits the click to the background task queue
	ModeQueue ExecutionMode = "queue"
)

// AppID identifies the application to Fyne and names its pictures directory
const AppID = "com.ytget.img-fetcher"

// Settings keys for Fyne preferences
const (
	KeyPicturesDir        = "pictures_directory"
	KeyOutputFileName     = "output_file_name"
	KeyJPEGQuality        = "jpeg_quality"
	KeyExecutionMode      = "execution_mode"
	KeyMaxParallel        = "max_parallel_fetches"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultOutputFileName     = fetch.DefaultFileName
	DefaultJPEGQuality        = fetch.DefaultJPEGQuality
	DefaultExecutionMode      = ModeDirect
	DefaultMaxParallel        = fetch.DefaultMaxParallel
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	fallbackPicturesDirName   = "img-fetcher-pictures"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPicturesDirectory returns the directory the image is saved to
func (s *Settings) GetPicturesDirectory() string {
	dir := s.app.Preferences().String(KeyPicturesDir)
	if dir == "" {
		defaultDir, err := platform.GetPicturesDir(s.app.UniqueID())
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), fallbackPicturesDirName)
		}
		s.SetPicturesDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetPicturesDirectory sets the directory the image is saved to
func (s *Settings) SetPicturesDirectory(dir string) {
	s.app.Preferences().SetString(KeyPicturesDir, dir)
}

// GetOutputFileName returns the fixed output file name
func (s *Settings) GetOutputFileName() string {
	name := s.app.Preferences().String(KeyOutputFileName)
	if name == "" {
		s.SetOutputFileName(DefaultOutputFileName)
		return DefaultOutputFileName
	}
	return name
}

// SetOutputFileName sets the output file name; empty or path-like names reset to the default
func (s *Settings) SetOutputFileName(name string) {
	if name == "" || filepath.Base(name) != name {
		name = DefaultOutputFileName
	}
	s.app.Preferences().SetString(KeyOutputFileName, name)
}

// GetOutputPath returns the full path of the saved image
func (s *Settings) GetOutputPath() string {
	return filepath.Join(s.GetPicturesDirectory(), s.GetOutputFileName())
}

// GetJPEGQuality returns the JPEG quality used when saving
func (s *Settings) GetJPEGQuality() int {
	return s.app.Preferences().IntWithFallback(KeyJPEGQuality, DefaultJPEGQuality)
}

// SetJPEGQuality sets the JPEG quality, clamped to 1..100
func (s *Settings) SetJPEGQuality(quality int) {
	s.app.Preferences().SetInt(KeyJPEGQuality, fetch.ClampJPEGQuality(quality))
}

// GetExecutionMode returns how clicks run the pipeline
func (s *Settings) GetExecutionMode() ExecutionMode {
	mode := ExecutionMode(s.app.Preferences().String(KeyExecutionMode))
	switch mode {
	case ModeDirect, ModeQueue:
		return mode
	default:
		s.SetExecutionMode(DefaultExecutionMode)
		return DefaultExecutionMode
	}
}

// SetExecutionMode sets how clicks run the pipeline
func (s *Settings) SetExecutionMode(mode ExecutionMode) {
	if mode != ModeDirect && mode != ModeQueue {
		mode = DefaultExecutionMode
	}
	s.app.Preferences().SetString(KeyExecutionMode, string(mode))
}

// GetExecutionModeOptions returns available execution modes
func (s *Settings) GetExecutionModeOptions() []ExecutionMode {
	return []ExecutionMode{ModeDirect, ModeQueue}
}

// GetMaxParallelFetches returns the maximum number of queued tasks running at once
func (s *Settings) GetMaxParallelFetches() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelFetches(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelFetches sets the maximum number of queued tasks running at once
func (s *Settings) SetMaxParallelFetches(count int) {
	if count < 1 {
		count = 1
	}
	if count > fetch.MaxParallelLimit {
		count = fetch.MaxParallelLimit
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAutoRevealOnComplete returns whether to reveal the saved image after a download
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal the saved image after a download
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// NewStore builds a file store from the current settings
func (s *Settings) NewStore() *fetch.FileStore {
	return fetch.NewFileStore(s.GetPicturesDirectory(), s.GetOutputFileName(), s.GetJPEGQuality())
}
