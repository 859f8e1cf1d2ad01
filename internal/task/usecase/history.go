package usecase

import (
	"context"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// History lists the audit entries for one task, newest first.
func (uc *implUseCase) History(ctx context.Context, taskID string) (task.HistoryOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History GetOneTask: %v", err)
		return task.HistoryOutput{}, err
	}
	if existing.ID == "" {
		return task.HistoryOutput{}, task.ErrTaskNotFound
	}

	entries, err := uc.repo.ListHistory(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListHistory: %v", err)
		return task.HistoryOutput{}, err
	}

	return task.HistoryOutput{
		Entries: entries,
		Count:   len(entries),
	}, nil
}
