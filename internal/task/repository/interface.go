package repository

import (
	"context"

	"gtd-task-management/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// ProjectReader is the slice of the project store the task domain needs:
// resolving owning projects for scoring and suggestion bonuses.
type ProjectReader interface {
	AllProjects(ctx context.Context) ([]model.Project, error)
}

// TaskRepository defines all data access methods for the Task entity.
// Implementations persist full records; the usecase computes mutations via
// the engine and hands finished records down.
type TaskRepository interface {
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// AllTasks returns the full snapshot used by the engine.
	AllTasks(ctx context.Context) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) (model.Task, error)
	// UpdateTasks applies a batch of sweep mutations in one transaction.
	UpdateTasks(ctx context.Context, tasks []model.Task) error
	DeleteTask(ctx context.Context, id string) error
	// UnlinkProject clears ProjectID on every task owned by the project
	// and returns how many tasks were touched.
	UnlinkProject(ctx context.Context, projectID string) (int, error)
}
