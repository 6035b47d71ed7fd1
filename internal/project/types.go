package project

import (
	"gtd-task-management/internal/model"
)

// --- UseCase Inputs ---

type CreateProjectInput struct {
	Title       string
	Description string
	Status      model.ProjectStatus
	Contexts    []string
	Position    int
}

// UpdateProjectInput is a partial update: nil pointers leave the field alone.
type UpdateProjectInput struct {
	ID string

	Title       *string
	Description *string
	Status      *model.ProjectStatus
	Contexts    *[]string
	Position    *int
}

type ListProjectsInput struct {
	Status model.ProjectStatus
	// IncludeArchived also returns archived projects when no status
	// filter is given.
	IncludeArchived bool
}

// --- UseCase Outputs ---

type CreateProjectOutput struct {
	Project model.Project
}

// ProjectProgress counts the project's tasks.
type ProjectProgress struct {
	TasksDone  int
	TasksTotal int
}

type DetailProjectOutput struct {
	Project  model.Project
	Progress ProjectProgress
}

type ListProjectsOutput struct {
	Projects []model.Project
	Total    int
}

type UpdateProjectOutput struct {
	Project model.Project
}

type DeleteProjectOutput struct {
	// UnlinkedTasks is how many tasks were detached from the project.
	UnlinkedTasks int
}
