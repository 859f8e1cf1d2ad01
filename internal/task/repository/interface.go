package repository

import (
	"context"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	HistoryRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CountTasks(ctx context.Context) (TaskCounts, error)
}

// HistoryRepository defines access to the append-only task history log.
type HistoryRepository interface {
	CreateHistory(ctx context.Context, opt CreateHistoryOptions) (model.TaskHistory, error)
	ListHistory(ctx context.Context, taskID string) ([]model.TaskHistory, error)
}
