package repository

import "gtd-task-management/internal/model"

// ListTasksOptions filters and pages ListTasks. Zero values mean "no filter";
// a Limit of 0 returns everything.
type ListTasksOptions struct {
	Status           model.TaskStatus
	ProjectID        string
	Context          string
	IncludeCompleted bool
	Limit            int
	Offset           int
}
