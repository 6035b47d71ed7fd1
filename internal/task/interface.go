package task

import (
	"context"

	"gtd-task-management/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error

	// Status lifecycle
	Complete(ctx context.Context, id string) (CompleteTaskOutput, error)
	Uncomplete(ctx context.Context, id string, to model.TaskStatus) (DetailTaskOutput, error)
	// Sweep re-checks every task against its dependencies and moves
	// blocked tasks into waiting and unblocked ones back to next.
	Sweep(ctx context.Context) (SweepOutput, error)

	// Subtasks
	ToggleSubtask(ctx context.Context, id string, index int) (DetailTaskOutput, error)

	// Scoring and analysis
	Score(ctx context.Context, id string) (ScoreOutput, error)
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
	Chains(ctx context.Context) (ChainsOutput, error)
	CriticalPath(ctx context.Context) (CriticalPathOutput, error)
}
