package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

func TestStats(t *testing.T) {
	ctx := context.Background()

	r := &mockRepository{
		countTasksFunc: func() (repo.TaskCounts, error) {
			return repo.TaskCounts{
				Total:      3,
				ByStatus:   map[string]int{"pending": 2, "completed": 1},
				ByCategory: map[string]int{"technical": 3},
				ByPriority: map[string]int{"low": 1, "high": 2},
			}, nil
		},
	}
	uc := newUC(r)

	out, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if out.Total != 3 {
		t.Errorf("total = %d, want 3", out.Total)
	}
	if !reflect.DeepEqual(out.ByStatus, map[string]int{"pending": 2, "completed": 1}) {
		t.Errorf("by status = %v", out.ByStatus)
	}
	if out.ByPriority["high"] != 2 {
		t.Errorf("high priority count = %d, want 2", out.ByPriority["high"])
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists Entries", func(t *testing.T) {
		r := &mockRepository{
			getOneTaskFunc: func(opt repo.GetOneTaskOptions) (model.Task, error) {
				return storedTask(), nil
			},
			listHistoryFunc: func(taskID string) ([]model.TaskHistory, error) {
				return []model.TaskHistory{
					{TaskID: taskID, Action: model.HistoryStatusChanged},
					{TaskID: taskID, Action: model.HistoryCreated},
				}, nil
			},
		}
		uc := newUC(r)

		out, err := uc.History(ctx, "task-1")
		if err != nil {
			t.Fatalf("History() error = %v", err)
		}
		if out.Count != 2 || len(out.Entries) != 2 {
			t.Fatalf("count = %d entries = %d, want 2", out.Count, len(out.Entries))
		}
		if out.Entries[0].Action != model.HistoryStatusChanged {
			t.Errorf("first entry = %q, want newest first", out.Entries[0].Action)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := newUC(&mockRepository{})
		if _, err := uc.History(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("error = %v, want %v", err, task.ErrTaskNotFound)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	var captured repo.ListTasksOptions
	r := &mockRepository{
		listTasksFunc: func(opt repo.ListTasksOptions) ([]model.Task, int, error) {
			captured = opt
			return []model.Task{storedTask()}, 1, nil
		},
	}
	uc := newUC(r)

	out, err := uc.List(ctx, task.ListTasksInput{
		Status:   "pending",
		Category: "general",
		Query:    "report",
		Limit:    10,
		Offset:   20,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if captured.Status != "pending" || captured.Category != "general" || captured.Query != "report" {
		t.Errorf("filters not forwarded: %+v", captured)
	}
	if captured.Limit != 10 || captured.Offset != 20 {
		t.Errorf("pagination not forwarded: limit=%d offset=%d", captured.Limit, captured.Offset)
	}
	if out.Total != 1 || len(out.Tasks) != 1 {
		t.Errorf("out = total %d, %d tasks; want 1/1", out.Total, len(out.Tasks))
	}
}
