package usecase_test

import (
	"context"
	"time"

	"gtd-task-management/internal/engine"
	"gtd-task-management/internal/model"
	"gtd-task-management/internal/task"
	"gtd-task-management/internal/task/repository"
	"gtd-task-management/pkg/recurrence"
)

func dailyRule() recurrence.Rule {
	return recurrence.Rule{Frequency: recurrence.Daily}
}

func enginePrefs(context string) engine.Preferences {
	return engine.Preferences{Context: context}
}

// Fixed clock for deterministic date evaluation.
var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// Mock logger for testing.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory task repository preserving insertion order.
type memRepo struct {
	tasks    []model.Task
	projects []model.Project
}

func (r *memRepo) find(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *memRepo) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *memRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	if i := r.find(id); i >= 0 {
		return r.tasks[i], nil
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (r *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range r.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Status == "" && !opt.IncludeCompleted && t.Completed {
			continue
		}
		if opt.ProjectID != "" && t.ProjectID != opt.ProjectID {
			continue
		}
		out = append(out, t)
	}
	total := len(out)
	if opt.Offset > 0 {
		if opt.Offset >= len(out) {
			out = nil
		} else {
			out = out[opt.Offset:]
		}
	}
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, total, nil
}

func (r *memRepo) AllTasks(ctx context.Context) ([]model.Task, error) {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memRepo) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	i := r.find(t.ID)
	if i < 0 {
		return model.Task{}, task.ErrTaskNotFound
	}
	r.tasks[i] = t
	return t, nil
}

func (r *memRepo) UpdateTasks(ctx context.Context, tasks []model.Task) error {
	for _, t := range tasks {
		if _, err := r.UpdateTask(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *memRepo) DeleteTask(ctx context.Context, id string) error {
	i := r.find(id)
	if i < 0 {
		return task.ErrTaskNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

func (r *memRepo) UnlinkProject(ctx context.Context, projectID string) (int, error) {
	n := 0
	for i := range r.tasks {
		if r.tasks[i].ProjectID == projectID {
			r.tasks[i].ProjectID = ""
			n++
		}
	}
	return n, nil
}

func (r *memRepo) AllProjects(ctx context.Context) ([]model.Project, error) {
	out := make([]model.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}
