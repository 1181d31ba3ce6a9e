package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/img-fetcher/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	picturesDirEntry *widget.Entry
	fileNameEntry    *widget.Entry
	qualityEntry     *widget.Entry
	modeSelect       *widget.Select
	maxParallelEntry *widget.Entry
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
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

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.picturesDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	picturesDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.picturesDirEntry)

	sd.fileNameEntry = widget.NewEntry()
	sd.fileNameEntry.SetPlaceHolder(config.DefaultOutputFileName)

	sd.qualityEntry = widget.NewEntry()
	sd.qualityEntry.SetPlaceHolder("1-100")

	modeOptions := []string{}
	for _, mode := range sd.settings.GetExecutionModeOptions() {
		modeOptions = append(modeOptions, string(mode))
	}
	sd.modeSelect = widget.NewSelect(modeOptions, nil)

	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-4")

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyPicturesDirectory)+":"),
		picturesDirRow,

		widget.NewLabel(text(KeyOutputFileName)+":"),
		sd.fileNameEntry,

		widget.NewLabel(text(KeyJPEGQuality)+":"),
		sd.qualityEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyExecutionMode)+":"),
		sd.modeSelect,

		widget.NewLabel(text(KeyMaxParallel)+":"),
		sd.maxParallelEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.picturesDirEntry.SetText(sd.settings.GetPicturesDirectory())
	sd.fileNameEntry.SetText(sd.settings.GetOutputFileName())
	sd.qualityEntry.SetText(strconv.Itoa(sd.settings.GetJPEGQuality()))
	sd.modeSelect.SetSelected(string(sd.settings.GetExecutionMode()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelFetches()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.picturesDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply copies the form values into settings, ignoring unparsable numbers
func (sd *SettingsDialog) apply() {
	if dir := sd.picturesDirEntry.Text; dir != "" {
		sd.settings.SetPicturesDirectory(dir)
	}

	sd.settings.SetOutputFileName(sd.fileNameEntry.Text)

	if quality, err := strconv.Atoi(sd.qualityEntry.Text); err == nil {
		sd.settings.SetJPEGQuality(quality)
	}

	if sd.modeSelect.Selected != "" {
		sd.settings.SetExecutionMode(config.ExecutionMode(sd.modeSelect.Selected))
	}

	if maxParallel, err := strconv.Atoi(sd.maxParallelEntry.Text); err == nil {
		sd.settings.SetMaxParallelFetches(maxParallel)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
}
