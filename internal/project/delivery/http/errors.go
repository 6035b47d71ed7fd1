package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/project"
	"gtd-task-management/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		response.NotFound(c, err)
	case errors.Is(err, project.ErrEmptyTitle),
		errors.Is(err, project.ErrInvalidStatus):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
