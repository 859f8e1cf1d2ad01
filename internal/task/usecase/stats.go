package usecase

import (
	"context"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
)

// Stats aggregates task counts by status, category and priority.
func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	counts, err := uc.repo.CountTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountTasks: %v", err)
		return task.StatsOutput{}, err
	}

	return task.StatsOutput{
		Total:      counts.Total,
		ByStatus:   counts.ByStatus,
		ByCategory: counts.ByCategory,
		ByPriority: counts.ByPriority,
	}, nil
}
