package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires the URL entry and download button to the fetch pipeline (directly
// or through the task queue), shows the current image, and renders
// notifications, the task list and settings. All UI strings are localized
// via Localization.
