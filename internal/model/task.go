package model

import (
	"time"

	"gtd-task-management/pkg/recurrence"
)

// TaskType distinguishes actionable tasks from reference material.
type TaskType string

const (
	TypeTask      TaskType = "task"
	TypeReference TaskType = "reference"
)

// TaskStatus is the GTD bucket a task lives in.
type TaskStatus string

const (
	StatusInbox     TaskStatus = "inbox"
	StatusNext      TaskStatus = "next"
	StatusWaiting   TaskStatus = "waiting"
	StatusSomeday   TaskStatus = "someday"
	StatusCompleted TaskStatus = "completed"
)

// Energy is the effort level a task demands.
type Energy string

const (
	EnergyNone   Energy = ""
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// Subtask is a single checklist entry within a task.
type Subtask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is the core GTD record.
//
// Invariants maintained by the task usecase:
//   - Completed == (Status == StatusCompleted) == (CompletedAt != nil)
//   - WaitingForTaskIDs never contains the task's own ID
type Task struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Type   TaskType   `json:"type"`
	Status TaskStatus `json:"status"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Notes       string `json:"notes,omitempty"`

	// Scheduling
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	DeferDate     *time.Time      `json:"deferDate,omitempty"`
	Recurrence    recurrence.Rule `json:"recurrence,omitempty"`
	RecurrenceEnd *time.Time      `json:"recurrenceEndDate,omitempty"`

	// Effort
	Energy    Energy `json:"energy,omitempty"`
	Time      int    `json:"time,omitempty"`      // estimated minutes
	TimeSpent int    `json:"timeSpent,omitempty"` // accumulated minutes

	// Dependencies
	WaitingForTaskIDs     []string `json:"waitingForTaskIds,omitempty"`
	WaitingForDescription string   `json:"waitingForDescription,omitempty"`

	// Organization
	ProjectID string    `json:"projectId,omitempty"`
	Contexts  []string  `json:"contexts,omitempty"` // tags, conventionally prefixed "@"
	Subtasks  []Subtask `json:"subtasks,omitempty"`
	Starred   bool      `json:"starred,omitempty"`

	// Completion
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// HasDependencies reports whether the task waits on other tasks.
func (t Task) HasDependencies() bool {
	return len(t.WaitingForTaskIDs) > 0
}

// SubtaskProgress returns completed and total checklist counts.
func (t Task) SubtaskProgress() (done, total int) {
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// Normalize enforces the data-model invariants on a well-typed but possibly
// inconsistent record: completion flags are reconciled (status wins), the
// self-dependency is stripped, and empty classification fields get defaults.
func (t *Task) Normalize() {
	if t.Type == "" {
		t.Type = TypeTask
	}
	if t.Status == "" {
		t.Status = StatusInbox
	}

	if t.Status == StatusCompleted {
		t.Completed = true
		if t.CompletedAt == nil {
			at := t.UpdatedAt
			if at.IsZero() {
				at = time.Now()
			}
			t.CompletedAt = &at
		}
	} else {
		t.Completed = false
		t.CompletedAt = nil
	}

	if len(t.WaitingForTaskIDs) > 0 {
		deps := t.WaitingForTaskIDs[:0]
		for _, id := range t.WaitingForTaskIDs {
			if id != "" && id != t.ID {
				deps = append(deps, id)
			}
		}
		t.WaitingForTaskIDs = deps
	}

	if t.Time < 0 {
		t.Time = 0
	}
	if t.TimeSpent < 0 {
		t.TimeSpent = 0
	}
}

// ValidStatus reports whether s is one of the five task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusInbox, StatusNext, StatusWaiting, StatusSomeday, StatusCompleted:
		return true
	}
	return false
}

// ValidEnergy reports whether e is a known energy level.
func ValidEnergy(e Energy) bool {
	switch e {
	case EnergyNone, EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}
