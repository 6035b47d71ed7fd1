package http

import (
	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/task"
	pkgLog "gtd-task-management/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
	Uncomplete(c *gin.Context)
	Sweep(c *gin.Context)
	ToggleSubtask(c *gin.Context)
	Score(c *gin.Context)
	Suggest(c *gin.Context)
	Chains(c *gin.Context)
	CriticalPath(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
