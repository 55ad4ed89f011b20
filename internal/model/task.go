package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResourceKind identifies which manifest section a task came from
type ResourceKind string

const (
	KindPDF     ResourceKind = "pdf"
	KindVideo   ResourceKind = "video"
	KindArchive ResourceKind = "archive"
	KindMirror  ResourceKind = "mirror"
)

// TaskIDPrefix prefixes every generated task identifier
const TaskIDPrefix = "task-"

// SyncTask represents one manifest item visited by a synchronization pass
type SyncTask struct {
	ID          string
	Kind        ResourceKind
	Category    string // empty for PDFs and the mirror
	Source      string // URL the resource is fetched from
	Destination string // file or directory that satisfies the item
	Status      TaskStatus
	LastError   string    // last error message if any
	StartedAt   time.Time // when the task was created
	FinishedAt  time.Time // when the task reached a finished state
}

// NewSyncTask creates a pending task with a fresh identifier
func NewSyncTask(kind ResourceKind, category, source, destination string) *SyncTask {
	return &SyncTask{
		ID:          GenerateTaskID(),
		Kind:        kind,
		Category:    category,
		Source:      source,
		Destination: destination,
		Status:      TaskStatusPending,
		StartedAt:   time.Now(),
	}
}

// GenerateTaskID returns a unique task identifier
func GenerateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}

// Finish moves the task into a finished status and records the error, if any
func (st *SyncTask) Finish(status TaskStatus, err error) {
	st.Status = status
	if err != nil {
		st.LastError = err.Error()
	}
	st.FinishedAt = time.Now()
}

// Duration returns how long the task took, or zero while it is unfinished
func (st *SyncTask) Duration() time.Duration {
	if st.FinishedAt.IsZero() {
		return 0
	}
	return st.FinishedAt.Sub(st.StartedAt)
}

// GetDisplayTitle returns the destination file name, or the source URL
func (st *SyncTask) GetDisplayTitle() string {
	if st.Destination != "" {
		parts := strings.FieldsFunc(st.Destination, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return st.Source
}

// Report collects the tasks of one synchronization run
type Report struct {
	RunID string
	Tasks []*SyncTask
}

// NewReport creates an empty report with a fresh run identifier
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Add appends a task to the report
func (r *Report) Add(task *SyncTask) {
	r.Tasks = append(r.Tasks, task)
}

// Counts returns the number of tasks per status
func (r *Report) Counts() map[TaskStatus]int {
	counts := make(map[TaskStatus]int)
	for _, task := range r.Tasks {
		counts[task.Status]++
	}
	return counts
}

// Failed returns all tasks that ended in error
func (r *Report) Failed() []*SyncTask {
	var failed []*SyncTask
	for _, task := range r.Tasks {
		if task.Status == TaskStatusError {
			failed = append(failed, task)
		}
	}
	return failed
}

// Summary returns a one-line human readable summary
func (r *Report) Summary() string {
	counts := r.Counts()
	return fmt.Sprintf("%d tasks: %d downloaded, %d skipped, %d failed",
		len(r.Tasks), counts[TaskStatusCompleted], counts[TaskStatusSkipped], counts[TaskStatusError])
}
