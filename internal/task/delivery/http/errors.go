package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/task"
	"gtd-task-management/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidEnergy),
		errors.Is(err, task.ErrSelfDependency),
		errors.Is(err, task.ErrSubtaskOutOfRange),
		errors.Is(err, task.ErrNotCompleted):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
