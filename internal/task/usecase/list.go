package usecase

import (
	"context"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// List returns a filtered, paginated list of Tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:     input.Status,
		Category:   input.Category,
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
		Query:      input.Query,
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
