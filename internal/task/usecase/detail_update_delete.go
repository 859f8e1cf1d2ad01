package usecase

import (
	"context"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if t.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial update. When title and/or description change, the
// content is re-classified and only the extracted entities and suggested
// actions are refreshed — category and priority keep their stored values
// unless explicitly supplied. This asymmetry is the documented contract, not
// an oversight.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	title := coalesce(input.Title, existing.Title)
	description := coalesce(input.Description, existing.Description)
	contentChanged := title != existing.Title || description != existing.Description

	entities := existing.ExtractedEntities
	actions := existing.SuggestedActions
	if contentChanged {
		cls := uc.classifier.Classify(title, description)
		entities = cls.ExtractedEntities
		actions = cls.SuggestedActions
	}

	category := existing.Category
	if input.Category != "" {
		if !input.Category.Valid() {
			return task.UpdateTaskOutput{}, task.ErrInvalidCategory
		}
		category = input.Category
	}

	priority := existing.Priority
	if input.Priority != "" {
		if !input.Priority.Valid() {
			return task.UpdateTaskOutput{}, task.ErrInvalidPriority
		}
		priority = input.Priority
	}

	status := existing.Status
	if input.Status != "" {
		if !input.Status.Valid() {
			return task.UpdateTaskOutput{}, task.ErrInvalidStatus
		}
		status = input.Status
	}

	dueDate := existing.DueDate
	if input.DueDate != "" {
		resolved, dueErr := uc.resolveDueDate(input.DueDate)
		if dueErr != nil {
			return task.UpdateTaskOutput{}, task.ErrInvalidDueDate
		}
		dueDate = resolved
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:                input.ID,
		Title:             title,
		Description:       description,
		Category:          category,
		Priority:          priority,
		Status:            status,
		AssignedTo:        coalesce(input.AssignedTo, existing.AssignedTo),
		DueDate:           dueDate,
		ExtractedEntities: entities,
		SuggestedActions:  actions,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	histOpt := historyForUpdate(existing.Status, updated.Status)
	histOpt.TaskID = updated.ID
	uc.recordHistory(ctx, histOpt)

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// historyForUpdate picks the history action for an update: completed when the
// status transitions to completed, status_changed for any other transition,
// plain updated otherwise.
func historyForUpdate(oldStatus, newStatus model.TaskStatus) repo.CreateHistoryOptions {
	opt := repo.CreateHistoryOptions{Action: model.HistoryUpdated}
	if newStatus != oldStatus {
		opt.Action = model.HistoryStatusChanged
		if newStatus == model.StatusCompleted {
			opt.Action = model.HistoryCompleted
		}
		opt.OldValue = string(oldStatus)
		opt.NewValue = string(newStatus)
	}
	return opt
}
