package usecase

import (
	"context"
	"time"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// Create classifies the task content and persists the new task. Explicitly
// supplied category/priority take precedence over the computed values; the
// computed entities and suggested actions are stored either way.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	status := input.Status
	if status == "" {
		status = model.StatusPending
	}
	if !status.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidStatus
	}

	cls := uc.classifier.Classify(input.Title, input.Description)

	category := cls.Category
	if input.Category != "" {
		if !input.Category.Valid() {
			return task.CreateTaskOutput{}, task.ErrInvalidCategory
		}
		category = input.Category
	}

	priority := cls.Priority
	if input.Priority != "" {
		if !input.Priority.Valid() {
			return task.CreateTaskOutput{}, task.ErrInvalidPriority
		}
		priority = input.Priority
	}

	dueDate, err := uc.resolveDueDate(input.DueDate)
	if err != nil {
		return task.CreateTaskOutput{}, task.ErrInvalidDueDate
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:             input.Title,
		Description:       input.Description,
		Category:          category,
		Priority:          priority,
		Status:            status,
		AssignedTo:        input.AssignedTo,
		DueDate:           dueDate,
		ExtractedEntities: cls.ExtractedEntities,
		SuggestedActions:  cls.SuggestedActions,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.recordHistory(ctx, repo.CreateHistoryOptions{
		TaskID:   created.ID,
		Action:   model.HistoryCreated,
		NewValue: string(created.Status),
	})

	uc.l.Infof(ctx, "uc.Create: task=%s category=%s priority=%s", created.ID, created.Category, created.Priority)
	return task.CreateTaskOutput{Task: created}, nil
}

// resolveDueDate turns the raw due-date string into an absolute time.
// Empty input means no due date.
func (uc *implUseCase) resolveDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	resolved, err := uc.dateMath.Resolve(raw, uc.now())
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}
