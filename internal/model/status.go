package model

// TaskStatus represents the status of an image fetch task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the image is being fetched and decoded
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusSaving means the decoded image is being written to disk
	TaskStatusSaving TaskStatus = "Saving"

	// TaskStatusCompleted means the image was decoded and saved
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusSaveFailed means the image was decoded but could not be saved
	TaskStatusSaveFailed TaskStatus = "SaveFailed"

	// TaskStatusError means the image could not be fetched or decoded
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading || ts == TaskStatusSaving
}

// IsFinished returns true if the task is in a finished state (completed, save failed, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusSaveFailed || ts == TaskStatusError
}

// HasImage returns true if the task finished with a decoded image
func (ts TaskStatus) HasImage() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusSaveFailed
}
