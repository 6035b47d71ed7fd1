package engine

import (
	"time"

	"gtd-task-management/internal/model"
)

// DependenciesMet reports whether every task the given task waits on is
// finished. A task with no dependencies is trivially met. A dependency ID
// that resolves to no known task is treated as satisfied rather than as a
// blocker. Only the immediate dependencies' completion flags are consulted;
// the chain is not walked.
func DependenciesMet(t model.Task, all Index) bool {
	for _, depID := range t.WaitingForTaskIDs {
		dep, ok := all[depID]
		if !ok {
			continue // dangling reference
		}
		if !dep.Completed {
			return false
		}
	}
	return true
}

// Available reports whether the task is actionable now with respect to its
// defer date: true when no defer date is set or the date is on or before
// today.
func Available(t model.Task, now time.Time) bool {
	if t.DeferDate == nil {
		return true
	}
	return !midnight(*t.DeferDate).After(midnight(now))
}

// Level returns the task's depth in the dependency graph: 0 when it has no
// incomplete dependencies, otherwise one more than the deepest incomplete
// dependency. Cycles terminate via the visiting set; a revisited task
// contributes level 0.
func Level(t model.Task, all Index) int {
	return level(t, all, map[string]bool{})
}

func level(t model.Task, all Index, visiting map[string]bool) int {
	if visiting[t.ID] {
		return 0
	}
	visiting[t.ID] = true
	defer delete(visiting, t.ID)

	max := -1
	for _, depID := range t.WaitingForTaskIDs {
		dep, ok := all[depID]
		if !ok || dep.Completed {
			continue
		}
		if l := level(dep, all, visiting); l > max {
			max = l
		}
	}
	return max + 1
}
