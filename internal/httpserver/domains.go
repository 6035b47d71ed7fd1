package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"gtd-task-management/internal/middleware"
	projectHTTP "gtd-task-management/internal/project/delivery/http"
	projectSqlite "gtd-task-management/internal/project/repository/sqlite"
	projectUC "gtd-task-management/internal/project/usecase"
	taskHTTP "gtd-task-management/internal/task/delivery/http"
	taskSqlite "gtd-task-management/internal/task/repository/sqlite"
	taskUC "gtd-task-management/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainSqlite.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskSqlite.New(srv.db, srv.l)
	projects := projectSqlite.New(srv.db, srv.l)

	uc := taskUC.New(srv.l, repo, projects, srv.dateMath, nil)

	h := taskHTTP.New(srv.l, uc)

	// Registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupProjectDomain initializes the project domain and registers its routes.
func (srv *HTTPServer) setupProjectDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := projectSqlite.New(srv.db, srv.l)
	tasks := taskSqlite.New(srv.db, srv.l)

	uc := projectUC.New(srv.l, repo, tasks, nil)

	h := projectHTTP.New(srv.l, uc)

	// Registers /api/v1/projects
	projectHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Project domain registered")
	return nil
}
