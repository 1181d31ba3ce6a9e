package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/img-fetcher/internal/model"
)

// TaskRow is a compact row for one queued fetch task
type TaskRow struct {
	widget.BaseWidget

	localization *Localization
	taskID       string
	outputPath   string

	titleLabel  *widget.Label
	statusLabel *widget.Label
	infoLabel   *widget.Label
	openBtn     *widget.Button
	revealBtn   *widget.Button
	copyBtn     *widget.Button
	removeBtn   *widget.Button
	content     *fyne.Container

	onOpen   func(filePath string)
	onReveal func(filePath string)
	onCopy   func(filePath string)
	onRemove func(taskID string)
}

// NewTaskRow creates an empty task row
func NewTaskRow(localization *Localization) *TaskRow {
	tr := &TaskRow{localization: localization}
	tr.ExtendBaseWidget(tr)

	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.statusLabel = widget.NewLabel("")
	tr.infoLabel = widget.NewLabel(DashPlaceholder)

	tr.openBtn = widget.NewButton(IconFile, func() { tr.fire(tr.onOpen) })
	tr.revealBtn = widget.NewButton(IconFolder, func() { tr.fire(tr.onReveal) })
	tr.copyBtn = widget.NewButton(IconCopy, func() { tr.fire(tr.onCopy) })
	tr.removeBtn = widget.NewButton(IconClose, func() {
		if tr.onRemove != nil && tr.taskID != "" {
			tr.onRemove(tr.taskID)
		}
	})
	for _, btn := range []*widget.Button{tr.openBtn, tr.revealBtn, tr.copyBtn, tr.removeBtn} {
		btn.Importance = widget.LowImportance
		btn.Disable()
	}

	actions := container.NewHBox(tr.infoLabel, layout.NewSpacer(), tr.openBtn, tr.revealBtn, tr.copyBtn, tr.removeBtn)
	tr.content = container.NewVBox(
		container.NewBorder(nil, nil, nil, tr.statusLabel, tr.titleLabel),
		actions,
	)
	return tr
}

// SetCallbacks sets the file action callbacks
func (tr *TaskRow) SetCallbacks(onOpen, onReveal, onCopy func(filePath string)) {
	tr.onOpen = onOpen
	tr.onReveal = onReveal
	tr.onCopy = onCopy
}

// SetOnRemove sets the callback for removing the row's task; only finished
// tasks can be removed
func (tr *TaskRow) SetOnRemove(onRemove func(taskID string)) {
	tr.onRemove = onRemove
}

// Update renders task with the given status snapshot
func (tr *TaskRow) Update(task *model.FetchTask, status model.TaskStatus) {
	if task == nil {
		return
	}

	tr.taskID = task.ID
	tr.titleLabel.SetText(task.GetDisplayTitle())
	tr.statusLabel.SetText(statusText(tr.localization, status))

	if status.HasImage() {
		info := task.Format + MiddleDotSeparator + task.GetDimensionsString()
		if status == model.TaskStatusCompleted {
			info += MiddleDotSeparator + task.GetSizeString()
		}
		tr.infoLabel.SetText(info)
	} else {
		tr.infoLabel.SetText(DashPlaceholder)
	}

	tr.outputPath = ""
	if status == model.TaskStatusCompleted {
		tr.outputPath = task.OutputPath
	}

	for _, btn := range []*widget.Button{tr.openBtn, tr.revealBtn, tr.copyBtn} {
		if tr.outputPath != "" {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}

	if status.IsFinished() {
		tr.removeBtn.Enable()
	} else {
		tr.removeBtn.Disable()
	}
}

// CreateRenderer implements fyne.Widget
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}

func (tr *TaskRow) fire(callback func(string)) {
	if callback != nil && tr.outputPath != "" {
		callback(tr.outputPath)
	}
}
