package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "🖼"
	IconCopy     = "📋"
	IconClose    = "×"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	ImageMinWidth  float32 = 320
	ImageMinHeight float32 = 240

	StatusLabelWidth float32 = 84
	TaskListOffset           = 0.75
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 60
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 460
)
