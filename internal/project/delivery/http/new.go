package http

import (
	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/project"
	pkgLog "gtd-task-management/pkg/log"
)

// Handler is the public interface for the project HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc project.UseCase
}

// New creates a new HTTP handler for the project domain.
func New(l pkgLog.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
