package repository

import "gtd-task-management/internal/model"

// ListProjectsOptions filters ListProjects. Zero values mean "no filter";
// archived projects are excluded unless asked for.
type ListProjectsOptions struct {
	Status          model.ProjectStatus
	IncludeArchived bool
}
