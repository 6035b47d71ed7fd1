package http

import (
	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Analysis routes come before the :id routes so gin does not treat
// "sweep", "suggestions" and friends as task IDs.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)

		tasks.POST("/sweep", mw.Auth(), h.Sweep)
		tasks.GET("/suggestions", mw.Auth(), h.Suggest)
		tasks.GET("/chains", mw.Auth(), h.Chains)
		tasks.GET("/critical-path", mw.Auth(), h.CriticalPath)

		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/complete", mw.Auth(), h.Complete)
		tasks.POST("/:id/uncomplete", mw.Auth(), h.Uncomplete)
		tasks.POST("/:id/subtasks/:index/toggle", mw.Auth(), h.ToggleSubtask)
		tasks.GET("/:id/score", mw.Auth(), h.Score)
	}
}
