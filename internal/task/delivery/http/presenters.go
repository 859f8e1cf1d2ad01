package http

import (
	"time"

	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/model"
	"github.com/Aashutosh2004011/TaskManagement-Backend/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category"    binding:"omitempty,oneof=scheduling finance technical safety general"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Status      string `json:"status"      binding:"omitempty,oneof=pending in_progress completed cancelled"`
	AssignedTo  string `json:"assigned_to" binding:"max=100"`
	DueDate     string `json:"due_date"    binding:"max=100"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    model.Category(r.Category),
		Priority:    model.Priority(r.Priority),
		Status:      model.TaskStatus(r.Status),
		AssignedTo:  r.AssignedTo,
		DueDate:     r.DueDate,
	}
}

// ---

type listReq struct {
	Status     string `form:"status"      binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Category   string `form:"category"    binding:"omitempty,oneof=scheduling finance technical safety general"`
	Priority   string `form:"priority"    binding:"omitempty,oneof=low medium high"`
	AssignedTo string `form:"assigned_to"`
	Query      string `form:"q"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListTasksInput{
		Status:     r.Status,
		Category:   r.Category,
		Priority:   r.Priority,
		AssignedTo: r.AssignedTo,
		Query:      r.Query,
		Limit:      limit,
		Offset:     offset,
	}
}

// ---

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"omitempty,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Category    string `json:"category"    binding:"omitempty,oneof=scheduling finance technical safety general"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Status      string `json:"status"      binding:"omitempty,oneof=pending in_progress completed cancelled"`
	AssignedTo  string `json:"assigned_to" binding:"omitempty,max=100"`
	DueDate     string `json:"due_date"    binding:"omitempty,max=100"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    model.Category(r.Category),
		Priority:    model.Priority(r.Priority),
		Status:      model.TaskStatus(r.Status),
		AssignedTo:  r.AssignedTo,
		DueDate:     r.DueDate,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Category          string                  `json:"category"`
	Priority          string                  `json:"priority"`
	Status            string                  `json:"status"`
	AssignedTo        string                  `json:"assigned_to,omitempty"`
	DueDate           *time.Time              `json:"due_date,omitempty"`
	ExtractedEntities model.ExtractedEntities `json:"extracted_entities"`
	SuggestedActions  []string                `json:"suggested_actions"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	actions := t.SuggestedActions
	if actions == nil {
		actions = []string{}
	}
	return taskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Category:          string(t.Category),
		Priority:          string(t.Priority),
		Status:            string(t.Status),
		AssignedTo:        t.AssignedTo,
		DueDate:           t.DueDate,
		ExtractedEntities: t.ExtractedEntities,
		SuggestedActions:  actions,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type statsResp struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory map[string]int `json:"by_category"`
	ByPriority map[string]int `json:"by_priority"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:      out.Total,
		ByStatus:   out.ByStatus,
		ByCategory: out.ByCategory,
		ByPriority: out.ByPriority,
	}
}

type historyEntryResp struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Action    string    `json:"action"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Count   int                `json:"count"`
}

func (h *handler) newHistoryResp(out task.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = historyEntryResp{
			ID:        e.ID,
			TaskID:    e.TaskID,
			Action:    string(e.Action),
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			ChangedAt: e.ChangedAt,
		}
	}
	return historyResp{
		Entries: entries,
		Count:   out.Count,
	}
}
