package usecase

import (
	"context"

	"github.com/google/uuid"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/task"
)

// Create captures a new task, resolving relative dates and applying the
// status rules for project assignment and dependencies.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.Title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}
	if input.Status != "" && !model.ValidStatus(input.Status) {
		return task.CreateTaskOutput{}, task.ErrInvalidStatus
	}
	if !model.ValidEnergy(input.Energy) {
		return task.CreateTaskOutput{}, task.ErrInvalidEnergy
	}

	now := uc.now()

	t := model.Task{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,

		Type:   input.Type,
		Status: input.Status,

		Title:       input.Title,
		Description: input.Description,
		Notes:       input.Notes,

		DueDate:       uc.resolveDate(ctx, input.DueDate, input.DueDateExpr),
		DeferDate:     uc.resolveDate(ctx, input.DeferDate, input.DeferDateExpr),
		Recurrence:    input.Recurrence,
		RecurrenceEnd: input.RecurrenceEnd,

		Energy: input.Energy,
		Time:   input.Time,

		WaitingForTaskIDs:     input.WaitingForTaskIDs,
		WaitingForDescription: input.WaitingForDescription,

		ProjectID: input.ProjectID,
		Contexts:  input.Contexts,
		Starred:   input.Starred,
	}

	for _, title := range input.Subtasks {
		if title != "" {
			t.Subtasks = append(t.Subtasks, model.Subtask{Title: title})
		}
	}

	for _, depID := range input.WaitingForTaskIDs {
		if depID == t.ID {
			return task.CreateTaskOutput{}, task.ErrSelfDependency
		}
	}

	t.Normalize()

	_, all, err := uc.snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create snapshot: %v", err)
		return task.CreateTaskOutput{}, err
	}
	applyStatusRules(&t, all)

	created, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}
