package usecase

import (
	"context"
	"time"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
)

// snapshot loads the full task set and its index for engine evaluation.
func (uc *implUseCase) snapshot(ctx context.Context) ([]model.Task, engine.Index, error) {
	tasks, err := uc.repo.AllTasks(ctx)
	if err != nil {
		return nil, nil, err
	}
	return tasks, engine.NewIndex(tasks), nil
}

// projectIndex loads the project snapshot. A missing project reader just
// means no project-derived signals.
func (uc *implUseCase) projectIndex(ctx context.Context) engine.ProjectIndex {
	if uc.projects == nil {
		return engine.ProjectIndex{}
	}
	projects, err := uc.projects.AllProjects(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "projectIndex: %v", err)
		return engine.ProjectIndex{}
	}
	return engine.NewProjectIndex(projects)
}

// resolveDate picks the absolute date when given, otherwise resolves the
// relative expression against now. Unparseable expressions resolve to nil
// rather than failing the request.
func (uc *implUseCase) resolveDate(ctx context.Context, abs *time.Time, expr string) *time.Time {
	if abs != nil {
		return abs
	}
	if expr == "" || uc.dateMath == nil {
		return nil
	}
	resolved, err := uc.dateMath.Parse(expr, uc.now())
	if err != nil {
		uc.l.Infof(ctx, "resolveDate: unparseable expression %q: %v", expr, err)
		return nil
	}
	return &resolved
}

// applyStatusRules enforces the manual-assignment transitions on an edited
// record: a project assignment promotes an inbox task to next, and fresh
// dependencies demote a next or someday task to waiting.
func applyStatusRules(t *model.Task, all engine.Index) {
	if t.Status == model.StatusInbox && t.ProjectID != "" {
		t.Status = model.StatusNext
	}

	if t.HasDependencies() &&
		(t.Status == model.StatusNext || t.Status == model.StatusSomeday) &&
		!engine.DependenciesMet(*t, all) {
		t.Status = model.StatusWaiting
	}
}

// runSweep evaluates the promotion/demotion sweep over the snapshot and
// persists the moves, if any.
func (uc *implUseCase) runSweep(ctx context.Context) ([]string, error) {
	tasks, _, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := engine.Sweep(tasks, uc.now())
	if len(result.Changed) == 0 {
		return nil, nil
	}

	if err := uc.repo.UpdateTasks(ctx, result.Changed); err != nil {
		return nil, err
	}
	uc.l.Infof(ctx, "sweep: moved %d tasks: %v", len(result.MovedIDs), result.MovedIDs)
	return result.MovedIDs, nil
}
