package postgre

import (
	"fmt"
	"strings"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task/repository"
)

// buildTaskFilter builds the WHERE clause + args shared by count and list.
// All non-empty filters are applied as AND conditions.
func buildTaskFilter(opt repository.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, opt.Category)
		idx++
	}
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, opt.Priority)
		idx++
	}
	if opt.AssignedTo != "" {
		conditions = append(conditions, fmt.Sprintf("assigned_to = $%d", idx))
		args = append(args, opt.AssignedTo)
		idx++
	}
	if opt.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", idx, idx))
		args = append(args, "%"+opt.Query+"%")
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func buildListQuery(opt repository.ListTasksOptions) (string, []any) {
	var parts []string

	mods, args := buildTaskFilter(opt)
	idx := len(args) + 1

	if mods != "1=1" {
		parts = append(parts, "WHERE "+mods)
	}

	// Sorting
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
