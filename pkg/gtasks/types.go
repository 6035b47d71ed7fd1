package gtasks

import "time"

// TaskList is a simplified representation of a Google Tasks list.
type TaskList struct {
	ID    string
	Title string
}

// RemoteTask is a simplified representation of a Google Tasks task.
type RemoteTask struct {
	ID        string
	ListID    string
	Title     string
	Notes     string
	Completed bool
	Due       *time.Time
	Updated   time.Time
	Deleted   bool
}

// UpsertTaskRequest is the input for creating or updating a remote task.
type UpsertTaskRequest struct {
	ListID    string
	TaskID    string // empty means create
	Title     string
	Notes     string
	Completed bool
	Due       *time.Time
}

// ListTasksRequest is the input for listing tasks from a remote list.
type ListTasksRequest struct {
	ListID        string
	ShowCompleted bool
	ShowDeleted   bool
	UpdatedMin    time.Time
	MaxResults    int64
}
