package usecase_test

import (
	"context"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/classifier"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository implements repository.Repository with overridable behaviors.
// Unset functions fall back to echoing the input so happy paths need no setup.
type mockRepository struct {
	createTaskFunc    func(opt repo.CreateTaskOptions) (model.Task, error)
	getOneTaskFunc    func(opt repo.GetOneTaskOptions) (model.Task, error)
	listTasksFunc     func(opt repo.ListTasksOptions) ([]model.Task, int, error)
	updateTaskFunc    func(opt repo.UpdateTaskOptions) (model.Task, error)
	deleteTaskFunc    func(id string) error
	countTasksFunc    func() (repo.TaskCounts, error)
	createHistoryFunc func(opt repo.CreateHistoryOptions) (model.TaskHistory, error)
	listHistoryFunc   func(taskID string) ([]model.TaskHistory, error)

	historyCalls []repo.CreateHistoryOptions
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(opt)
	}
	return taskFromCreate(opt), nil
}

func (m *mockRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.getOneTaskFunc != nil {
		return m.getOneTaskFunc(opt)
	}
	return model.Task{}, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.updateTaskFunc != nil {
		return m.updateTaskFunc(opt)
	}
	return taskFromUpdate(opt), nil
}

func (m *mockRepository) DeleteTask(ctx context.Context, id string) error {
	if m.deleteTaskFunc != nil {
		return m.deleteTaskFunc(id)
	}
	return nil
}

func (m *mockRepository) CountTasks(ctx context.Context) (repo.TaskCounts, error) {
	if m.countTasksFunc != nil {
		return m.countTasksFunc()
	}
	return repo.TaskCounts{}, nil
}

func (m *mockRepository) CreateHistory(ctx context.Context, opt repo.CreateHistoryOptions) (model.TaskHistory, error) {
	m.historyCalls = append(m.historyCalls, opt)
	if m.createHistoryFunc != nil {
		return m.createHistoryFunc(opt)
	}
	return model.TaskHistory{TaskID: opt.TaskID, Action: opt.Action}, nil
}

func (m *mockRepository) ListHistory(ctx context.Context, taskID string) ([]model.TaskHistory, error) {
	if m.listHistoryFunc != nil {
		return m.listHistoryFunc(taskID)
	}
	return nil, nil
}

func taskFromCreate(opt repo.CreateTaskOptions) model.Task {
	return model.Task{
		ID:                "task-1",
		Title:             opt.Title,
		Description:       opt.Description,
		Category:          opt.Category,
		Priority:          opt.Priority,
		Status:            opt.Status,
		AssignedTo:        opt.AssignedTo,
		DueDate:           opt.DueDate,
		ExtractedEntities: opt.ExtractedEntities,
		SuggestedActions:  opt.SuggestedActions,
	}
}

func taskFromUpdate(opt repo.UpdateTaskOptions) model.Task {
	return model.Task{
		ID:                opt.ID,
		Title:             opt.Title,
		Description:       opt.Description,
		Category:          opt.Category,
		Priority:          opt.Priority,
		Status:            opt.Status,
		AssignedTo:        opt.AssignedTo,
		DueDate:           opt.DueDate,
		ExtractedEntities: opt.ExtractedEntities,
		SuggestedActions:  opt.SuggestedActions,
	}
}

func newTestClassifier() *classifier.Classifier {
	return classifier.New(classifier.DefaultTables())
}

func newTestDateMath() *datemath.Parser {
	p, _ := datemath.NewParser("UTC")
	return p
}
