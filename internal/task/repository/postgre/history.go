package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// CreateHistory appends one entry to the task history log.
func (r *implRepository) CreateHistory(ctx context.Context, opt repository.CreateHistoryOptions) (model.TaskHistory, error) {
	const query = `
		INSERT INTO task_history (id, task_id, action, old_value, new_value, changed_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, task_id, action, old_value, new_value, changed_at`

	var entry model.TaskHistory
	var oldValue, newValue sql.NullString
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.TaskID, opt.Action,
		nullString(opt.OldValue), nullString(opt.NewValue),
	).Scan(&entry.ID, &entry.TaskID, &entry.Action, &oldValue, &newValue, &entry.ChangedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateHistory"), err)
		return model.TaskHistory{}, repository.ErrFailedToInsert
	}

	entry.OldValue = oldValue.String
	entry.NewValue = newValue.String
	return entry, nil
}

// ListHistory returns all history entries for one task, newest first.
func (r *implRepository) ListHistory(ctx context.Context, taskID string) ([]model.TaskHistory, error) {
	const query = `
		SELECT id, task_id, action, old_value, new_value, changed_at
		FROM task_history
		WHERE task_id = $1
		ORDER BY changed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHistory"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.TaskHistory
	for rows.Next() {
		var entry model.TaskHistory
		var oldValue, newValue sql.NullString
		if err := rows.Scan(&entry.ID, &entry.TaskID, &entry.Action, &oldValue, &newValue, &entry.ChangedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListHistory"), err)
			return nil, repository.ErrFailedToList
		}
		entry.OldValue = oldValue.String
		entry.NewValue = newValue.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListHistory"), err)
		return nil, repository.ErrFailedToList
	}
	return entries, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
