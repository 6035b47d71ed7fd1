package task

import (
	"time"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
	"gtd-task-management/pkg/recurrence"
)

// --- UseCase Inputs ---

// CreateTaskInput captures a new task. DueDateExpr and DeferDateExpr accept
// relative expressions ("tomorrow", "in 3 days", "next friday") resolved
// against the service timezone; the absolute fields win when both are set.
type CreateTaskInput struct {
	Title       string
	Description string
	Notes       string

	Type   model.TaskType
	Status model.TaskStatus

	DueDate       *time.Time
	DueDateExpr   string
	DeferDate     *time.Time
	DeferDateExpr string

	Recurrence    recurrence.Rule
	RecurrenceEnd *time.Time

	Energy model.Energy
	Time   int

	WaitingForTaskIDs     []string
	WaitingForDescription string

	ProjectID string
	Contexts  []string
	Subtasks  []string
	Starred   bool
}

// UpdateTaskInput is a partial update: nil pointers leave the field alone.
type UpdateTaskInput struct {
	ID string

	Title       *string
	Description *string
	Notes       *string

	Status *model.TaskStatus

	DueDate    *time.Time
	ClearDue   bool
	DeferDate  *time.Time
	ClearDefer bool

	Recurrence    *recurrence.Rule
	RecurrenceEnd *time.Time

	Energy    *model.Energy
	Time      *int
	TimeSpent *int

	WaitingForTaskIDs     *[]string
	WaitingForDescription *string

	ProjectID *string
	Contexts  *[]string
	Subtasks  *[]model.Subtask
	Starred   *bool
}

// ListTasksInput filters and pages the task list.
type ListTasksInput struct {
	Status           model.TaskStatus
	ProjectID        string
	Context          string
	IncludeCompleted bool
	Limit            int
	Offset           int
}

// SuggestInput carries the situational constraints for smart suggestions.
type SuggestInput struct {
	Preferences engine.Preferences
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type DetailTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type UpdateTaskOutput struct {
	Task model.Task
	// Moved lists tasks whose status changed in the dependency re-check
	// that follows every edit.
	Moved []string
}

// CompleteTaskOutput is the result of a completion transition.
type CompleteTaskOutput struct {
	Task model.Task
	// Next is the synthesized instance for recurring tasks, if any.
	Next *model.Task
	// Unblocked lists tasks promoted out of waiting by this completion.
	Unblocked []string
}

type SweepOutput struct {
	Moved []string
}

// ScoreOutput is the advisory priority score with its display mapping.
type ScoreOutput struct {
	TaskID string
	Score  int
	Label  string
	Color  string
}

type SuggestOutput struct {
	Suggestions []engine.Suggestion
}

type ChainsOutput struct {
	Chains []engine.Chain
}

type CriticalPathOutput struct {
	Path engine.Chain
}
