package task

import "github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"

// CreateTaskInput is the input for task creation. Category and Priority are
// optional: when set they override the classifier's computed values, while
// the computed entities and suggested actions are always stored.
type CreateTaskInput struct {
	Title       string
	Description string
	Category    model.Category
	Priority    model.Priority
	Status      model.TaskStatus
	AssignedTo  string
	DueDate     string // absolute (RFC3339, YYYY-MM-DD) or relative ("tomorrow")
}

type CreateTaskOutput struct {
	Task model.Task
}

// ListTasksInput holds filters and pagination for listing tasks.
type ListTasksInput struct {
	Status     string
	Category   string
	Priority   string
	AssignedTo string
	Query      string // free-text search over title and description
	Limit      int
	Offset     int
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

// UpdateTaskInput is a partial update: empty fields keep their stored value.
// When title and/or description change, entities and suggested actions are
// recomputed; category and priority are never auto-overwritten, only changed
// when explicitly supplied here.
type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Category    model.Category
	Priority    model.Priority
	Status      model.TaskStatus
	AssignedTo  string
	DueDate     string
}

type UpdateTaskOutput struct {
	Task model.Task
}

// StatsOutput aggregates task counts for the statistics endpoint.
type StatsOutput struct {
	Total      int
	ByStatus   map[string]int
	ByCategory map[string]int
	ByPriority map[string]int
}

type HistoryOutput struct {
	Entries []model.TaskHistory
	Count   int
}
