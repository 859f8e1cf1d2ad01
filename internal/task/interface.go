package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// Aggregations
	Stats(ctx context.Context) (StatsOutput, error)
	History(ctx context.Context, taskID string) (HistoryOutput, error)
}
