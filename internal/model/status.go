package model

// TaskStatus represents the status of a synchronization task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the resource is being fetched
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusSkipped means the destination was already satisfied
	TaskStatusSkipped TaskStatus = "Skipped"

	// TaskStatusCompleted means the fetch finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the fetch failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (skipped, completed, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusSkipped || ts == TaskStatusCompleted || ts == TaskStatusError
}
