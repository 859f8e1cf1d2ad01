package repository

import (
	"time"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title             string
	Description       string
	Category          model.Category
	Priority          model.Priority
	Status            model.TaskStatus
	AssignedTo        string
	DueDate           *time.Time
	ExtractedEntities model.ExtractedEntities
	SuggestedActions  []string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// All non-empty filters are applied as AND conditions; Query does a
// case-insensitive substring search over title and description.
type ListTasksOptions struct {
	Status     string
	Category   string
	Priority   string
	AssignedTo string
	Query      string
	Limit      int
	Offset     int
	OrderBy    string
}

// UpdateTaskOptions holds the full replacement state for an existing Task.
// The use case resolves partial updates against the stored row before
// calling this, so every field here is written as-is.
type UpdateTaskOptions struct {
	ID                string
	Title             string
	Description       string
	Category          model.Category
	Priority          model.Priority
	Status            model.TaskStatus
	AssignedTo        string
	DueDate           *time.Time
	ExtractedEntities model.ExtractedEntities
	SuggestedActions  []string
}

// CreateHistoryOptions holds parameters for appending one history entry.
type CreateHistoryOptions struct {
	TaskID   string
	Action   model.HistoryAction
	OldValue string
	NewValue string
}

// TaskCounts is the aggregate result backing the statistics endpoint.
type TaskCounts struct {
	Total      int
	ByStatus   map[string]int
	ByCategory map[string]int
	ByPriority map[string]int
}
