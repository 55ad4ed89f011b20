package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSyncTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		destination string
		source      string
		expected    string
	}{
		{"/data/Medical/BFheNvvJGoQ.mp4", "https://www.youtube.com/watch?v=BFheNvvJGoQ", "BFheNvvJGoQ.mp4"},
		{`C:\data\Survival_Manual.pdf`, "https://archive.org/x.pdf", "Survival_Manual.pdf"},
		{"", "https://archive.org/details/Survival_Lilly_Archive", "https://archive.org/details/Survival_Lilly_Archive"},
	}

	for _, test := range tests {
		task := &SyncTask{Destination: test.destination, Source: test.source}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with destination='%s' = '%s', expected '%s'",
				test.destination, result, test.expected)
		}
	}
}

func TestNewSyncTask(t *testing.T) {
	task := NewSyncTask(KindVideo, "Medical", "https://youtu.be/abc", "/base/Medical/abc.mp4")

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status to be TaskStatusPending, got %s", task.Status)
	}

	if !strings.HasPrefix(task.ID, TaskIDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", TaskIDPrefix, task.ID)
	}

	// task- + 36 chars for UUID
	if len(task.ID) != len(TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(TaskIDPrefix)+36, len(task.ID), task.ID)
	}

	if task.Duration() != 0 {
		t.Errorf("Expected zero duration for unfinished task, got %v", task.Duration())
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := GenerateTaskID()
	id2 := GenerateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
}

func TestSyncTask_Finish(t *testing.T) {
	task := NewSyncTask(KindPDF, "", "https://example.org/a.pdf", "/base/a.pdf")
	task.StartedAt = time.Now().Add(-time.Second)

	task.Finish(TaskStatusError, errors.New("connection refused"))

	if task.Status != TaskStatusError {
		t.Errorf("Expected status Error, got %s", task.Status)
	}
	if task.LastError != "connection refused" {
		t.Errorf("Expected LastError 'connection refused', got '%s'", task.LastError)
	}
	if task.Duration() < time.Second {
		t.Errorf("Expected duration of at least 1s, got %v", task.Duration())
	}
}

func TestReport_Counts(t *testing.T) {
	report := NewReport()
	for _, status := range []TaskStatus{TaskStatusCompleted, TaskStatusSkipped, TaskStatusSkipped, TaskStatusError} {
		task := NewSyncTask(KindPDF, "", "u", "d")
		task.Finish(status, nil)
		report.Add(task)
	}

	counts := report.Counts()
	if counts[TaskStatusSkipped] != 2 {
		t.Errorf("Expected 2 skipped, got %d", counts[TaskStatusSkipped])
	}
	if len(report.Failed()) != 1 {
		t.Errorf("Expected 1 failed task, got %d", len(report.Failed()))
	}

	expected := "4 tasks: 1 downloaded, 2 skipped, 1 failed"
	if report.Summary() != expected {
		t.Errorf("Summary() = '%s', expected '%s'", report.Summary(), expected)
	}
}
