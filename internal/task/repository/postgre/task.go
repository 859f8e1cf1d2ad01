package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

const taskColumns = `id, title, description, category, priority, status, assigned_to, due_date,
	extracted_entities, suggested_actions, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s`, taskColumns, taskColumns)

	entities, err := json.Marshal(opt.ExtractedEntities)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal entities: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repository.ErrFailedToInsert
	}
	actions, err := json.Marshal(opt.SuggestedActions)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal actions: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Title, opt.Description, opt.Category, opt.Priority,
		opt.Status, opt.AssignedTo, nullTime(opt.DueDate), entities, actions,
	)

	task, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repository.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 LIMIT 1`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repository.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := buildTaskFilter(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repository.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repository.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), scanErr)
			return nil, 0, repository.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repository.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, description = $2, category = $3, priority = $4, status = $5,
			assigned_to = $6, due_date = $7, extracted_entities = $8,
			suggested_actions = $9, updated_at = $10
		WHERE id = $11
		RETURNING %s`, taskColumns)

	entities, err := json.Marshal(opt.ExtractedEntities)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal entities: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repository.ErrFailedToUpdate
	}
	actions, err := json.Marshal(opt.SuggestedActions)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal actions: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repository.ErrFailedToUpdate
	}

	row := r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Category, opt.Priority, opt.Status,
		opt.AssignedTo, nullTime(opt.DueDate), entities, actions, time.Now(), opt.ID,
	)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repository.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task by ID. History rows are removed by cascade.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// CountTasks aggregates task counts by status, category and priority.
func (r *implRepository) CountTasks(ctx context.Context) (repository.TaskCounts, error) {
	counts := repository.TaskCounts{
		ByStatus:   make(map[string]int),
		ByCategory: make(map[string]int),
		ByPriority: make(map[string]int),
	}

	const query = `
		SELECT status, category, priority, COUNT(*)
		FROM tasks
		GROUP BY status, category, priority`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return repository.TaskCounts{}, repository.ErrFailedToCount
	}
	defer rows.Close()

	for rows.Next() {
		var status, category, priority string
		var n int
		if err := rows.Scan(&status, &category, &priority, &n); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CountTasks"), err)
			return repository.TaskCounts{}, repository.ErrFailedToCount
		}
		counts.Total += n
		counts.ByStatus[status] += n
		counts.ByCategory[category] += n
		counts.ByPriority[priority] += n
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CountTasks"), err)
		return repository.TaskCounts{}, repository.ErrFailedToCount
	}
	return counts, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var task model.Task
	var assignedTo sql.NullString
	var dueDate sql.NullTime
	var entitiesRaw, actionsRaw []byte

	err := s.Scan(
		&task.ID, &task.Title, &task.Description, &task.Category, &task.Priority,
		&task.Status, &assignedTo, &dueDate, &entitiesRaw, &actionsRaw,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.AssignedTo = assignedTo.String
	if dueDate.Valid {
		t := dueDate.Time
		task.DueDate = &t
	}
	if len(entitiesRaw) > 0 {
		if err := json.Unmarshal(entitiesRaw, &task.ExtractedEntities); err != nil {
			return model.Task{}, err
		}
	}
	if len(actionsRaw) > 0 {
		if err := json.Unmarshal(actionsRaw, &task.SuggestedActions); err != nil {
			return model.Task{}, err
		}
	}
	return task, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
