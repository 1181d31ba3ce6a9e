package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/img-fetcher/internal/config"
	"github.com/ytget/img-fetcher/internal/fetch"
	"github.com/ytget/img-fetcher/internal/model"
	"github.com/ytget/img-fetcher/internal/platform"
)

// storeSetter is implemented by fetchers whose output location can be swapped
// after settings change
type storeSetter interface {
	SetStore(fetch.Store)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	urlEntry     *widget.Entry
	downloadBtn  *widget.Button
	imageView    *canvas.Image
	taskList     *widget.List
	tasks        []*model.FetchTask
	fetcher      fetch.Fetcher
	queue        fetch.Queue
	settings     *config.Settings
	localization *Localization

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI. Direct fetches go through
// fetcher; queue mode hands URLs to queue, which may be nil.
func NewRootUI(window fyne.Window, settings *config.Settings, fetcher fetch.Fetcher, queue fetch.Queue) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		fetcher:      fetcher,
		queue:        queue,
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized: fetcher=%v queue=%v output=%s",
		fetcher != nil, queue != nil, settings.GetOutputPath())

	window.SetTitle(localization.GetText(KeyAppTitle))

	if ui.queue != nil {
		ui.queue.SetUpdateCallback(ui.onTaskUpdate)
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.downloadBtn, ui.urlEntry)

	// Notification panel under the URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Current image slot
	ui.imageView = canvas.NewImageFromImage(nil)
	ui.imageView.FillMode = canvas.ImageFillContain
	ui.imageView.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))

	// Queue history
	ui.taskList = widget.NewList(
		func() int {
			return len(ui.tasks)
		},
		ui.createTaskItem,
		ui.updateTaskItem,
	)

	split := container.NewVSplit(ui.imageView, ui.taskList)
	split.Offset = TaskListOffset

	ui.window.SetContent(container.NewBorder(topCombined, nil, nil, nil, split))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

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
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.taskList.Refresh()
}

// onDownloadClick handles the download button click. Malformed input is not
// rejected here; the pipeline reports it as a download error.
func (ui *RootUI) onDownloadClick() {
	rawURL := cleanURL(ui.urlEntry.Text)
	log.Printf("Processing URL: %s", rawURL)

	if ui.settings.GetExecutionMode() == config.ModeQueue && ui.queue != nil {
		ui.enqueue(rawURL)
		return
	}

	ui.showNotification(ui.localization.GetText(KeyDownloading), true)
	go ui.fetchDirect(rawURL)
}

// enqueue hands the URL to the background queue
func (ui *RootUI) enqueue(rawURL string) {
	task, err := ui.queue.AddTask(rawURL)
	if err != nil {
		log.Printf("Error adding task for %s: %v", rawURL, err)
		ui.showNotification(ui.localization.GetText(KeyDownloadError)+": "+err.Error(), false)
		return
	}

	log.Printf("Task added successfully: ID=%s, Status=%s", task.ID, task.Status)
	ui.showNotification(ui.localization.GetText(KeyTaskAdded), false)
}

// fetchDirect runs one pipeline pass on the calling goroutine and presents
// the result
func (ui *RootUI) fetchDirect(rawURL string) {
	if ui.fetcher == nil {
		ui.presentOutcome(outcomeFromResult(rawURL, nil, fetch.ErrDownload))
		return
	}

	result, err := ui.fetcher.Run(context.Background(), rawURL, func(step fetch.Step) {
		if step == fetch.StepSave {
			ui.showNotification(ui.localization.GetText(KeySaving), true)
		}
	})
	if err != nil {
		log.Printf("Direct fetch of %s failed: %v", rawURL, err)
	}

	ui.presentOutcome(outcomeFromResult(rawURL, result, err))
}

// onTaskUpdate handles task updates from the queue
func (ui *RootUI) onTaskUpdate(task *model.FetchTask) {
	status, ok := ui.queue.GetTaskStatus(task.ID)
	if !ok {
		return
	}
	log.Printf("Task update received: id=%s status=%s", task.ID, status)

	fyne.Do(func() {
		ui.tasks = ui.queue.GetAllTasks()
		ui.taskList.Refresh()
	})

	if status.IsFinished() {
		ui.presentOutcome(ui.taskOutcome(task, status))
	}
}

// taskOutcome pairs a finished task with the queue's image slot. Only the
// task that filled the slot gets the image.
func (ui *RootUI) taskOutcome(task *model.FetchTask, status model.TaskStatus) outcome {
	latestID, img := ui.queue.LatestImage()
	if latestID != task.ID {
		img = nil
	}
	return outcomeFromTask(task, status, img)
}

// presentOutcome shows a finished run: image slot, notice, toast and system
// notification
func (ui *RootUI) presentOutcome(o outcome) {
	fyne.Do(func() {
		ui.applyOutcome(o)
		ui.showToastNotification(o)
	})

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(o.NoticeKey),
		Content: o.URL,
	})

	if o.Path != "" && ui.settings.GetAutoRevealOnComplete() {
		log.Printf("Auto-revealing %s", o.Path)
		ui.onRevealFile(o.Path)
	}
}

// applyOutcome updates the image slot and notification panel. A run without
// an image leaves the previously shown image in place. Must run on the UI
// goroutine.
func (ui *RootUI) applyOutcome(o outcome) {
	if o.Image != nil {
		ui.imageView.Image = o.Image
		ui.imageView.Refresh()
	}

	ui.notificationSpinner.Hide()
	ui.notificationLabel.SetText(ui.localization.GetText(o.NoticeKey))
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// showNotification displays a message in the notification panel under the URL input.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// showToastNotification shows a short-lived popup with the notice and, when a
// file was written, open and reveal actions
func (ui *RootUI) showToastNotification(o outcome) {
	titleLabel := widget.NewLabel(ui.localization.GetText(o.NoticeKey))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(container.NewBorder(nil, nil, titleLabel, closeBtn))
	if o.Path != "" {
		path := o.Path
		openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() { ui.onOpenFile(path) })
		revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() { ui.onRevealFile(path) })
		revealBtn.Importance = widget.HighImportance
		content.Add(container.NewHBox(revealBtn, openBtn))
	}

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toastPopup.Hide)
	}()
}

// createTaskItem creates a new task list row
func (ui *RootUI) createTaskItem() fyne.CanvasObject {
	row := NewTaskRow(ui.localization)
	row.SetCallbacks(ui.onOpenFile, ui.onRevealFile, ui.onCopyPath)
	row.SetOnRemove(ui.onRemoveTask)
	return row
}

// updateTaskItem binds a row to the task at id
func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.tasks) {
		return
	}
	row, ok := item.(*TaskRow)
	if !ok {
		return
	}
	task := ui.tasks[id]
	status, _ := ui.queue.GetTaskStatus(task.ID)
	row.Update(task, status)
}

// onRemoveTask drops a finished task from the queue history
func (ui *RootUI) onRemoveTask(taskID string) {
	if ui.queue == nil {
		return
	}
	if err := ui.queue.RemoveTask(taskID); err != nil {
		log.Printf("Error removing task %s: %v", taskID, err)
		return
	}
	log.Printf("Task %s removed", taskID)

	ui.tasks = ui.queue.GetAllTasks()
	ui.taskList.Refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings to the running pipeline and queue
func (ui *RootUI) onSettingsSaved() {
	if setter, ok := ui.fetcher.(storeSetter); ok {
		setter.SetStore(ui.settings.NewStore())
	}
	if ui.queue != nil {
		ui.queue.SetMaxParallel(ui.settings.GetMaxParallelFetches())
	}

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	log.Printf("Settings applied: output=%s mode=%s", ui.settings.GetOutputPath(), ui.settings.GetExecutionMode())
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if !ui.checkFilePath("onRevealFile", filePath) {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onOpenFile handles opening a saved image with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if !ui.checkFilePath("onOpenFile", filePath) {
		return
	}
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onCopyPath handles copying file path to clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	if !ui.checkFilePath("onCopyPath", filePath) {
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.showNotification(ui.localization.GetText(KeyPathCopied), false)
}

// checkFilePath rejects empty paths and URLs passed where a file is expected
func (ui *RootUI) checkFilePath(caller, filePath string) bool {
	if filePath == "" || strings.HasPrefix(filePath, "http") {
		log.Printf("Error: %s called with invalid file path %q", caller, filePath)
		return false
	}
	return true
}
