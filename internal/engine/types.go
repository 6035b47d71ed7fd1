// Package engine holds the pure GTD core: dependency evaluation, priority
// scoring, smart suggestions, chain analysis, and status-lifecycle
// transitions. Every function here is a side-effect-free computation over an
// in-memory snapshot with an injectable "now"; callers own persistence and
// decide when to apply the returned mutations.
package engine

import (
	"time"

	"gtd-task-management/internal/model"
)

// Index is a snapshot of tasks keyed by ID.
type Index map[string]model.Task

// NewIndex builds an Index from a task slice.
func NewIndex(tasks []model.Task) Index {
	idx := make(Index, len(tasks))
	for _, t := range tasks {
		idx[t.ID] = t
	}
	return idx
}

// ProjectIndex is a snapshot of projects keyed by ID.
type ProjectIndex map[string]model.Project

// NewProjectIndex builds a ProjectIndex from a project slice.
func NewProjectIndex(projects []model.Project) ProjectIndex {
	idx := make(ProjectIndex, len(projects))
	for _, p := range projects {
		idx[p.ID] = p
	}
	return idx
}

// Preferences are the situational constraints for smart suggestions.
type Preferences struct {
	Context          string       `json:"context,omitempty"`          // e.g. "@home"
	AvailableMinutes int          `json:"availableMinutes,omitempty"` // 0 means unspecified
	EnergyLevel      model.Energy `json:"energyLevel,omitempty"`
	MaxSuggestions   int          `json:"maxSuggestions,omitempty"` // defaults to 5
}

// DefaultMaxSuggestions caps suggestion output when the caller gives no limit.
const DefaultMaxSuggestions = 5

// Suggestion is one ranked candidate with its human-readable justification.
type Suggestion struct {
	Task    model.Task `json:"task"`
	Score   int        `json:"score"`
	Reasons []string   `json:"reasons"`
}

// CompletionResult is the outcome of completing a task: the updated record
// and, for recurring tasks whose schedule has not ended, the synthesized
// next-occurrence instance.
type CompletionResult struct {
	Task model.Task
	Next *model.Task
}

// SweepResult is the outcome of a promotion/demotion sweep. Changed holds the
// updated records; MovedIDs lists the IDs that changed status, in input order.
type SweepResult struct {
	Changed  []model.Task
	MovedIDs []string
}

// Chain is an ordered dependency path from a root task to a leaf task.
type Chain []model.Task

// midnight truncates t to the start of its day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole-day distance from a to b at date granularity.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}
