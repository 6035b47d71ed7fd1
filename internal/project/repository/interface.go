package repository

import (
	"context"

	"gtd-task-management/internal/model"
)

// Repository is the composed interface for the project domain data store.
type Repository interface {
	ProjectRepository
}

// ProjectRepository defines all data access methods for the Project entity.
type ProjectRepository interface {
	CreateProject(ctx context.Context, p model.Project) (model.Project, error)
	GetProject(ctx context.Context, id string) (model.Project, error)
	ListProjects(ctx context.Context, opt ListProjectsOptions) ([]model.Project, error)
	AllProjects(ctx context.Context) ([]model.Project, error)
	UpdateProject(ctx context.Context, p model.Project) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// CountProjectTasks counts the project's tasks, completed and total.
	CountProjectTasks(ctx context.Context, projectID string) (done, total int, err error)
}

// TaskUnlinker detaches tasks from a deleted project. The task repository
// satisfies this.
type TaskUnlinker interface {
	UnlinkProject(ctx context.Context, projectID string) (int, error)
}
