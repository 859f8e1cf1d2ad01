package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task. Title and description are classified automatically: category, priority, extracted entities and suggested actions are filled in unless category/priority are supplied explicitly.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of tasks with optional filters and free-text search.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       status      query string false "Filter by status"
// @Param       category    query string false "Filter by category"
// @Param       priority    query string false "Filter by priority"
// @Param       assigned_to query string false "Filter by assignee"
// @Param       q           query string false "Free-text search over title and description"
// @Param       limit       query int    false "Page size (default: 20, max: 100)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Changing title or description re-runs entity extraction and refreshes suggested actions; category and priority only change when supplied explicitly.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task and its history.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Stats godoc
// @Summary     Task statistics
// @Description Returns total task count plus breakdowns by status, category and priority.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// History godoc
// @Summary     Task history
// @Description Returns the audit trail for one task, newest entry first.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
