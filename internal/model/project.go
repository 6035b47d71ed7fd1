package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectSomeday   ProjectStatus = "someday"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// Project groups tasks toward a multi-step outcome. Tasks reference their
// owning project via Task.ProjectID; deleting a project unlinks its tasks
// rather than deleting them.
type Project struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	Contexts    []string      `json:"contexts,omitempty"`
	Position    int           `json:"position,omitempty"`
}

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectActive, ProjectSomeday, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}
