package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Task is the core domain entity managed by this service.
type Task struct {
	ID                string
	Title             string
	Description       string
	Category          Category
	Priority          Priority
	Status            TaskStatus
	AssignedTo        string
	DueDate           *time.Time
	ExtractedEntities ExtractedEntities
	SuggestedActions  []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HistoryAction describes what kind of change a history entry records.
type HistoryAction string

const (
	HistoryCreated       HistoryAction = "created"
	HistoryUpdated       HistoryAction = "updated"
	HistoryStatusChanged HistoryAction = "status_changed"
	HistoryCompleted     HistoryAction = "completed"
)

// TaskHistory is one append-only audit entry for a task mutation.
// OldValue/NewValue are empty for entries where they do not apply.
type TaskHistory struct {
	ID        string
	TaskID    string
	Action    HistoryAction
	OldValue  string
	NewValue  string
	ChangedAt time.Time
}
