package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/model"
	"gtd-task-management/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Captures a new task. Relative date expressions like "tomorrow" or "in 3 days" are accepted alongside absolute dates.
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
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated task list with optional status, project and context filters. Completed tasks are excluded unless requested.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       status           query string false "Filter by status (inbox/next/waiting/someday/completed)"
// @Param       projectId        query string false "Filter by project ID"
// @Param       context          query string false "Filter by context tag"
// @Param       includeCompleted query bool   false "Include completed tasks"
// @Param       limit            query int    false "Page size (default: 20)"
// @Param       offset           query int    false "Page offset (default: 0)"
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
		h.respondError(c, err)
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
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update. Omitted fields are left alone; clearDueDate and clearDeferDate remove the dates. An edit can move tasks in or out of waiting, reported in "moved".
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
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task. Tasks that were waiting on it are re-evaluated.
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
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task completed. Recurring tasks roll over to a fresh instance; tasks unblocked by the completion are promoted out of waiting.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Complete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Uncomplete godoc
// @Summary     Reopen a completed task
// @Description Reverts a completed task to an active status (next when the body is empty).
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string        true  "Task ID"
// @Param       body body uncompleteReq false "Target status"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/uncomplete [POST]
func (h *handler) Uncomplete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	req, err := h.processUncompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Uncomplete(ctx, id, model.TaskStatus(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.Uncomplete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Sweep godoc
// @Summary     Re-evaluate task statuses
// @Description Runs the dependency sweep: blocked tasks demote to waiting, unblocked and defer-expired tasks promote to next.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} sweepResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/sweep [POST]
func (h *handler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Sweep(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sweep: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSweepResp(output))
}

// ToggleSubtask godoc
// @Summary     Toggle a subtask
// @Description Flips the completion state of one checklist entry by index.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id    path string true "Task ID"
// @Param       index path int    true "Subtask index (0-based)"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/subtasks/{index}/toggle [POST]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleSubtask(ctx, id, index)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleSubtask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Score godoc
// @Summary     Get the priority score
// @Description Computes the 0-100 advisory priority score for a task with its display label and color.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} scoreResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/score [GET]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Score(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Score: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScoreResp(output))
}

// Suggest godoc
// @Summary     Smart suggestions
// @Description Ranks actionable tasks against the caller's context, available time and energy, with human-readable reasons.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       context          query string false "Context tag, e.g. @home"
// @Param       availableMinutes query int    false "Minutes available right now"
// @Param       energy           query string false "Energy level (low/medium/high)"
// @Param       limit            query int    false "Max suggestions (default: 5)"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/suggestions [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Chains godoc
// @Summary     Dependency chains
// @Description Returns every dependency chain across the task set, longest first.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} chainsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/chains [GET]
func (h *handler) Chains(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Chains(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Chains: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChainsResp(output))
}

// CriticalPath godoc
// @Summary     Critical path
// @Description Returns the longest dependency chain in the task set.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Success     200 {object} criticalPathResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/critical-path [GET]
func (h *handler) CriticalPath(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CriticalPath(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CriticalPath: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCriticalPathResp(output))
}
