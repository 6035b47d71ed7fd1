package engine

import (
	"time"

	"github.com/google/uuid"

	"gtd-task-management/internal/model"
)

// Complete marks the task finished and, when a recurrence rule is set and
// the schedule has not ended, synthesizes the next-occurrence instance with
// a fresh ID, the pre-completion status, and cleared completion state.
func Complete(t model.Task, now time.Time) CompletionResult {
	previous := t.Status

	t.Status = model.StatusCompleted
	t.Completed = true
	completedAt := now
	t.CompletedAt = &completedAt
	t.UpdatedAt = now

	result := CompletionResult{Task: t}

	if !t.Recurrence.Recurs() {
		return result
	}

	// Next occurrence is computed from the due date when one exists,
	// otherwise from the completion date.
	base := now
	if t.DueDate != nil {
		base = *t.DueDate
	}
	next, ok := t.Recurrence.Next(base)
	if !ok {
		return result
	}
	if t.RecurrenceEnd != nil && next.After(*t.RecurrenceEnd) {
		return result
	}

	instance := model.Task{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,

		Type:   t.Type,
		Status: previous,

		Title:       t.Title,
		Description: t.Description,
		Notes:       t.Notes,

		Recurrence:    t.Recurrence,
		RecurrenceEnd: t.RecurrenceEnd,

		Energy: t.Energy,
		Time:   t.Time,

		ProjectID: t.ProjectID,
		Contexts:  append([]string(nil), t.Contexts...),
		Starred:   t.Starred,
	}

	due := next
	instance.DueDate = &due

	result.Next = &instance
	return result
}

// Uncomplete reverts a completed task to the given status (StatusNext when
// empty) and clears its completion state.
func Uncomplete(t model.Task, to model.TaskStatus, now time.Time) model.Task {
	if to == "" || to == model.StatusCompleted {
		to = model.StatusNext
	}
	t.Status = to
	t.Completed = false
	t.CompletedAt = nil
	t.UpdatedAt = now
	return t
}

// Sweep enforces the waiting-state invariant across the snapshot:
//
//   - a next or someday task with unmet dependencies is demoted to waiting
//   - a waiting task is promoted to next when its dependencies are all met,
//     or when it has no task dependencies and either its defer date has
//     arrived or nothing (no defer date, no waiting-for note) blocks it
//
// Promotion clears the dependency fields, so running the sweep again on an
// unchanged snapshot is a no-op. The input slice is not mutated.
func Sweep(tasks []model.Task, now time.Time) SweepResult {
	all := NewIndex(tasks)

	var result SweepResult
	for _, t := range tasks {
		switch t.Status {
		case model.StatusNext, model.StatusSomeday:
			if t.HasDependencies() && !DependenciesMet(t, all) {
				t.Status = model.StatusWaiting
				t.UpdatedAt = now
				result.Changed = append(result.Changed, t)
				result.MovedIDs = append(result.MovedIDs, t.ID)
			}

		case model.StatusWaiting:
			if !promotable(t, all, now) {
				continue
			}
			t.Status = model.StatusNext
			t.WaitingForTaskIDs = nil
			t.WaitingForDescription = ""
			t.UpdatedAt = now
			result.Changed = append(result.Changed, t)
			result.MovedIDs = append(result.MovedIDs, t.ID)
		}
	}
	return result
}

func promotable(t model.Task, all Index, now time.Time) bool {
	if t.HasDependencies() {
		return DependenciesMet(t, all)
	}
	if t.DeferDate != nil {
		return Available(t, now)
	}
	return t.WaitingForDescription == ""
}
