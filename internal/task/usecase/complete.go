package usecase

import (
	"context"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
	"gtd-task-management/internal/task"
)

// Complete finishes a task, persists the recurrence rollover when one is
// due, and re-runs the dependency sweep because completing one task can
// unblock any task waiting on it.
func (uc *implUseCase) Complete(ctx context.Context, id string) (task.CompleteTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.CompleteTaskOutput{}, err
	}
	if t.Completed {
		// Completing twice is a no-op, not an error.
		return task.CompleteTaskOutput{Task: t}, nil
	}

	result := engine.Complete(t, uc.now())

	updated, err := uc.repo.UpdateTask(ctx, result.Task)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.CompleteTaskOutput{}, err
	}

	output := task.CompleteTaskOutput{Task: updated}

	if result.Next != nil {
		instance, createErr := uc.repo.CreateTask(ctx, *result.Next)
		if createErr != nil {
			uc.l.Errorf(ctx, "uc.Complete recurrence instance: %v", createErr)
			return task.CompleteTaskOutput{}, createErr
		}
		uc.l.Infof(ctx, "uc.Complete: recurring task %s rolled over to %s", id, instance.ID)
		output.Next = &instance
	}

	moved, err := uc.runSweep(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete sweep: %v", err)
		return task.CompleteTaskOutput{}, err
	}
	output.Unblocked = moved

	return output, nil
}

// Uncomplete reverts a completed task to the given status (next when
// empty) and re-checks dependencies, since the revived task may block
// others again.
func (uc *implUseCase) Uncomplete(ctx context.Context, id string, to model.TaskStatus) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	if !t.Completed {
		return task.DetailTaskOutput{}, task.ErrNotCompleted
	}
	if to != "" && !model.ValidStatus(to) {
		return task.DetailTaskOutput{}, task.ErrInvalidStatus
	}

	updated, err := uc.repo.UpdateTask(ctx, engine.Uncomplete(t, to, uc.now()))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Uncomplete UpdateTask: %v", err)
		return task.DetailTaskOutput{}, err
	}

	if _, err := uc.runSweep(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.Uncomplete sweep: %v", err)
	}

	// The sweep may have demoted the revived task straight back to waiting.
	if fresh, freshErr := uc.repo.GetTask(ctx, updated.ID); freshErr == nil {
		updated = fresh
	}

	return task.DetailTaskOutput{Task: updated}, nil
}

// Sweep runs the promotion/demotion pass on demand.
func (uc *implUseCase) Sweep(ctx context.Context) (task.SweepOutput, error) {
	moved, err := uc.runSweep(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Sweep: %v", err)
		return task.SweepOutput{}, err
	}
	return task.SweepOutput{Moved: moved}, nil
}

// ToggleSubtask flips one checklist entry.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, id string, index int) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	if index < 0 || index >= len(t.Subtasks) {
		return task.DetailTaskOutput{}, task.ErrSubtaskOutOfRange
	}

	t.Subtasks[index].Completed = !t.Subtasks[index].Completed
	t.UpdatedAt = uc.now()

	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleSubtask UpdateTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: updated}, nil
}
