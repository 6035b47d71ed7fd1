package usecase

import (
	"context"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/task"
)

// Score computes the advisory 0-100 priority score for one task.
func (uc *implUseCase) Score(ctx context.Context, id string) (task.ScoreOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return task.ScoreOutput{}, err
	}

	_, all, err := uc.snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Score snapshot: %v", err)
		return task.ScoreOutput{}, err
	}

	score := engine.PriorityScore(t, all, uc.projectIndex(ctx), uc.now())
	return task.ScoreOutput{
		TaskID: t.ID,
		Score:  score,
		Label:  engine.ScoreLabel(score),
		Color:  engine.ScoreColor(score),
	}, nil
}

// Suggest ranks the actionable tasks against the caller's situation.
func (uc *implUseCase) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	tasks, _, err := uc.snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Suggest snapshot: %v", err)
		return task.SuggestOutput{}, err
	}

	suggestions := engine.SmartSuggestions(tasks, uc.projectIndex(ctx), input.Preferences, uc.now())
	return task.SuggestOutput{Suggestions: suggestions}, nil
}

// Chains returns the dependency chains across the task set, longest first.
func (uc *implUseCase) Chains(ctx context.Context) (task.ChainsOutput, error) {
	tasks, _, err := uc.snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chains snapshot: %v", err)
		return task.ChainsOutput{}, err
	}
	return task.ChainsOutput{Chains: engine.Chains(tasks)}, nil
}

// CriticalPath returns the longest dependency chain.
func (uc *implUseCase) CriticalPath(ctx context.Context) (task.CriticalPathOutput, error) {
	tasks, _, err := uc.snapshot(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CriticalPath snapshot: %v", err)
		return task.CriticalPathOutput{}, err
	}
	return task.CriticalPathOutput{Path: engine.CriticalPath(tasks)}, nil
}
