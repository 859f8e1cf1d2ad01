package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
	repo "github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/usecase"
)

func newUC(r *mockRepository) task.UseCase {
	return usecase.New(&mockLogger{}, r, newTestClassifier(), newTestDateMath())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Classifies Content", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		r := &mockRepository{
			createTaskFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return taskFromCreate(opt), nil
			},
		}
		uc := newUC(r)

		out, err := uc.Create(ctx, task.CreateTaskInput{
			Title: "Schedule urgent meeting with John Smith",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if captured.Category != model.CategoryScheduling {
			t.Errorf("category = %q, want %q", captured.Category, model.CategoryScheduling)
		}
		if captured.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want %q", captured.Priority, model.PriorityHigh)
		}
		if captured.Status != model.StatusPending {
			t.Errorf("status = %q, want %q", captured.Status, model.StatusPending)
		}
		if got := captured.ExtractedEntities.Persons; !reflect.DeepEqual(got, []string{"John Smith"}) {
			t.Errorf("persons = %v, want [John Smith]", got)
		}
		if got := captured.ExtractedEntities.ActionVerbs; !reflect.DeepEqual(got, []string{"schedule"}) {
			t.Errorf("action verbs = %v, want [schedule]", got)
		}
		if len(captured.SuggestedActions) != 4 || captured.SuggestedActions[0] != "Block calendar" {
			t.Errorf("suggested actions = %v, want the scheduling checklist", captured.SuggestedActions)
		}

		if len(r.historyCalls) != 1 {
			t.Fatalf("history calls = %d, want 1", len(r.historyCalls))
		}
		h := r.historyCalls[0]
		if h.Action != model.HistoryCreated || h.TaskID != out.Task.ID || h.NewValue != string(model.StatusPending) {
			t.Errorf("history entry = %+v, want created/%s/pending", h, out.Task.ID)
		}
	})

	t.Run("Explicit Overrides Win", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		r := &mockRepository{
			createTaskFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return taskFromCreate(opt), nil
			},
		}
		uc := newUC(r)

		_, err := uc.Create(ctx, task.CreateTaskInput{
			Title:    "Pay the invoice",
			Category: model.CategoryTechnical,
			Priority: model.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if captured.Category != model.CategoryTechnical {
			t.Errorf("category = %q, want explicit %q", captured.Category, model.CategoryTechnical)
		}
		if captured.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want explicit %q", captured.Priority, model.PriorityHigh)
		}
		// Suggested actions still follow the computed category, not the override.
		if len(captured.SuggestedActions) != 4 || captured.SuggestedActions[0] != "Review budget" {
			t.Errorf("suggested actions = %v, want the finance checklist", captured.SuggestedActions)
		}
	})

	t.Run("Resolves Due Date", func(t *testing.T) {
		var captured repo.CreateTaskOptions
		r := &mockRepository{
			createTaskFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				captured = opt
				return taskFromCreate(opt), nil
			},
		}
		uc := newUC(r)

		_, err := uc.Create(ctx, task.CreateTaskInput{
			Title:   "File the report",
			DueDate: "2026-06-15",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if captured.DueDate == nil {
			t.Fatal("due date = nil, want resolved time")
		}
		want := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
		if !captured.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", captured.DueDate, want)
		}
	})

	t.Run("Invalid Input", func(t *testing.T) {
		uc := newUC(&mockRepository{})

		cases := []struct {
			name    string
			input   task.CreateTaskInput
			wantErr error
		}{
			{"bad status", task.CreateTaskInput{Title: "x", Status: "archived"}, task.ErrInvalidStatus},
			{"bad category", task.CreateTaskInput{Title: "x", Category: "misc"}, task.ErrInvalidCategory},
			{"bad priority", task.CreateTaskInput{Title: "x", Priority: "extreme"}, task.ErrInvalidPriority},
			{"bad due date", task.CreateTaskInput{Title: "x", DueDate: "whenever you can"}, task.ErrInvalidDueDate},
		}
		for _, tc := range cases {
			if _, err := uc.Create(ctx, tc.input); !errors.Is(err, tc.wantErr) {
				t.Errorf("%s: error = %v, want %v", tc.name, err, tc.wantErr)
			}
		}
	})

	t.Run("History Failure Is Non-Fatal", func(t *testing.T) {
		r := &mockRepository{
			createHistoryFunc: func(opt repo.CreateHistoryOptions) (model.TaskHistory, error) {
				return model.TaskHistory{}, errors.New("history table gone")
			},
		}
		uc := newUC(r)

		out, err := uc.Create(ctx, task.CreateTaskInput{Title: "Order supplies"})
		if err != nil {
			t.Fatalf("Create() error = %v, want history failure swallowed", err)
		}
		if out.Task.ID == "" {
			t.Error("expected created task despite history failure")
		}
	})

	t.Run("Repository Error Surfaces", func(t *testing.T) {
		wantErr := errors.New("insert failed")
		r := &mockRepository{
			createTaskFunc: func(opt repo.CreateTaskOptions) (model.Task, error) {
				return model.Task{}, wantErr
			},
		}
		uc := newUC(r)

		if _, err := uc.Create(ctx, task.CreateTaskInput{Title: "x"}); !errors.Is(err, wantErr) {
			t.Errorf("error = %v, want %v", err, wantErr)
		}
	})
}
