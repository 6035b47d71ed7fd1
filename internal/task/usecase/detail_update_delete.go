package usecase

import (
	"context"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/task"
	"gtd-task-management/internal/task/repository"
)

// List returns tasks matching the filter, paged.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status:           input.Status,
		ProjectID:        input.ProjectID,
		Context:          input.Context,
		IncludeCompleted: input.IncludeCompleted,
		Limit:            limit,
		Offset:           input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies a partial edit, enforces the manual status-transition
// rules, and re-runs the dependency sweep afterwards since an edit can
// block or unblock any number of tasks.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return task.UpdateTaskOutput{}, task.ErrEmptyTitle
		}
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Notes != nil {
		t.Notes = *input.Notes
	}
	if input.Status != nil {
		if !model.ValidStatus(*input.Status) {
			return task.UpdateTaskOutput{}, task.ErrInvalidStatus
		}
		t.Status = *input.Status
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	} else if input.ClearDue {
		t.DueDate = nil
	}
	if input.DeferDate != nil {
		t.DeferDate = input.DeferDate
	} else if input.ClearDefer {
		t.DeferDate = nil
	}
	if input.Recurrence != nil {
		t.Recurrence = *input.Recurrence
	}
	if input.RecurrenceEnd != nil {
		t.RecurrenceEnd = input.RecurrenceEnd
	}
	if input.Energy != nil {
		if !model.ValidEnergy(*input.Energy) {
			return task.UpdateTaskOutput{}, task.ErrInvalidEnergy
		}
		t.Energy = *input.Energy
	}
	if input.Time != nil {
		t.Time = *input.Time
	}
	if input.TimeSpent != nil {
		t.TimeSpent = *input.TimeSpent
	}
	if input.WaitingForTaskIDs != nil {
		for _, depID := range *input.WaitingForTaskIDs {
			if depID == t.ID {
				return task.UpdateTaskOutput{}, task.ErrSelfDependency
			}
		}
		t.WaitingForTaskIDs = *input.WaitingForTaskIDs
	}
	if input.WaitingForDescription != nil {
		t.WaitingForDescription = *input.WaitingForDescription
	}
	if input.ProjectID != nil {
		t.ProjectID = *input.ProjectID
	}
	if input.Contexts != nil {
		t.Contexts = *input.Contexts
	}
	if input.Subtasks != nil {
		t.Subtasks = *input.Subtasks
	}
	if input.Starred != nil {
		t.Starred = *input.Starred
	}

	t.UpdatedAt = uc.now()
	t.Normalize()

	_, all, err := uc.snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update snapshot: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	applyStatusRules(&t, all)

	updated, err := uc.repo.UpdateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	moved, err := uc.runSweep(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update sweep: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	// The sweep may have moved the edited task again.
	if len(moved) > 0 {
		if fresh, freshErr := uc.repo.GetTask(ctx, updated.ID); freshErr == nil {
			updated = fresh
		}
	}

	return task.UpdateTaskOutput{Task: updated, Moved: moved}, nil
}

// Delete permanently removes a task.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return err
	}
	// Other tasks may have referenced the deleted task; dangling IDs count
	// as satisfied, so waiting tasks can now promote.
	if _, err := uc.runSweep(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.Delete sweep: %v", err)
	}
	return nil
}
