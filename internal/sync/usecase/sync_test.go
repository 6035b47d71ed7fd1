package usecase_test

import (
	"context"
	"testing"
	"time"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/sync"
	"gtd-task-management/internal/sync/usecase"
	"gtd-task-management/internal/task"
	"gtd-task-management/internal/task/repository"
	"gtd-task-management/pkg/gtasks"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

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

// fakeRemote is an in-memory Google Tasks stand-in.
type fakeRemote struct {
	tasks  []gtasks.RemoteTask
	nextID int
}

func (f *fakeRemote) ListTasks(ctx context.Context, req gtasks.ListTasksRequest) ([]gtasks.RemoteTask, error) {
	out := make([]gtasks.RemoteTask, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeRemote) UpsertTask(ctx context.Context, req gtasks.UpsertTaskRequest) (*gtasks.RemoteTask, error) {
	if req.TaskID != "" {
		for i := range f.tasks {
			if f.tasks[i].ID == req.TaskID {
				f.tasks[i].Title = req.Title
				f.tasks[i].Notes = req.Notes
				f.tasks[i].Completed = req.Completed
				f.tasks[i].Due = req.Due
				rt := f.tasks[i]
				return &rt, nil
			}
		}
	}
	f.nextID++
	rt := gtasks.RemoteTask{
		ID:        "remote-" + string(rune('0'+f.nextID)),
		Title:     req.Title,
		Notes:     req.Notes,
		Completed: req.Completed,
		Due:       req.Due,
	}
	f.tasks = append(f.tasks, rt)
	return &rt, nil
}

func (f *fakeRemote) DeleteTask(ctx context.Context, listID, taskID string) error {
	return nil
}

// memLinks is an in-memory link store.
type memLinks struct {
	links map[string]sync.Link
}

func newMemLinks() *memLinks { return &memLinks{links: map[string]sync.Link{}} }

func (m *memLinks) GetLink(ctx context.Context, localID string) (sync.Link, error) {
	if l, ok := m.links[localID]; ok {
		return l, nil
	}
	return sync.Link{}, sync.ErrLinkNotFound
}

func (m *memLinks) GetLinkByRemote(ctx context.Context, remoteID string) (sync.Link, error) {
	for _, l := range m.links {
		if l.RemoteID == remoteID {
			return l, nil
		}
	}
	return sync.Link{}, sync.ErrLinkNotFound
}

func (m *memLinks) AllLinks(ctx context.Context) ([]sync.Link, error) {
	var out []sync.Link
	for _, l := range m.links {
		out = append(out, l)
	}
	return out, nil
}

func (m *memLinks) SaveLink(ctx context.Context, link sync.Link) error {
	m.links[link.LocalID] = link
	return nil
}

func (m *memLinks) DeleteLink(ctx context.Context, localID string) error {
	delete(m.links, localID)
	return nil
}

// memTasks is a minimal in-memory task repository.
type memTasks struct {
	tasks []model.Task
}

func (r *memTasks) find(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *memTasks) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	r.tasks = append(r.tasks, t)
	return t, nil
}

func (r *memTasks) GetTask(ctx context.Context, id string) (model.Task, error) {
	if i := r.find(id); i >= 0 {
		return r.tasks[i], nil
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (r *memTasks) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	return r.tasks, len(r.tasks), nil
}

func (r *memTasks) AllTasks(ctx context.Context) ([]model.Task, error) {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *memTasks) UpdateTask(ctx context.Context, t model.Task) (model.Task, error) {
	if i := r.find(t.ID); i >= 0 {
		r.tasks[i] = t
		return t, nil
	}
	return model.Task{}, task.ErrTaskNotFound
}

func (r *memTasks) UpdateTasks(ctx context.Context, tasks []model.Task) error {
	for _, t := range tasks {
		if _, err := r.UpdateTask(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *memTasks) DeleteTask(ctx context.Context, id string) error {
	if i := r.find(id); i >= 0 {
		r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
		return nil
	}
	return task.ErrTaskNotFound
}

func (r *memTasks) UnlinkProject(ctx context.Context, projectID string) (int, error) {
	return 0, nil
}

// fakeTaskUC records inbound mutations.
type fakeTaskUC struct {
	repo      *memTasks
	created   []task.CreateTaskInput
	completed []string
}

func (f *fakeTaskUC) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	f.created = append(f.created, input)
	t := model.Task{ID: "local-" + input.Title, Title: input.Title, Status: model.StatusInbox}
	f.repo.tasks = append(f.repo.tasks, t)
	return task.CreateTaskOutput{Task: t}, nil
}

func (f *fakeTaskUC) Complete(ctx context.Context, id string) (task.CompleteTaskOutput, error) {
	f.completed = append(f.completed, id)
	if i := f.repo.find(id); i >= 0 {
		f.repo.tasks[i].Completed = true
		f.repo.tasks[i].Status = model.StatusCompleted
	}
	return task.CompleteTaskOutput{}, nil
}

func (f *fakeTaskUC) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{}, nil
}
func (f *fakeTaskUC) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{}, nil
}
func (f *fakeTaskUC) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{}, nil
}
func (f *fakeTaskUC) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeTaskUC) Uncomplete(ctx context.Context, id string, to model.TaskStatus) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{}, nil
}
func (f *fakeTaskUC) Sweep(ctx context.Context) (task.SweepOutput, error) {
	return task.SweepOutput{}, nil
}
func (f *fakeTaskUC) ToggleSubtask(ctx context.Context, id string, index int) (task.DetailTaskOutput, error) {
	return task.DetailTaskOutput{}, nil
}
func (f *fakeTaskUC) Score(ctx context.Context, id string) (task.ScoreOutput, error) {
	return task.ScoreOutput{}, nil
}
func (f *fakeTaskUC) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	return task.SuggestOutput{}, nil
}
func (f *fakeTaskUC) Chains(ctx context.Context) (task.ChainsOutput, error) {
	return task.ChainsOutput{}, nil
}
func (f *fakeTaskUC) CriticalPath(ctx context.Context) (task.CriticalPathOutput, error) {
	return task.CriticalPathOutput{}, nil
}

func newSyncUC(remote *fakeRemote, links *memLinks, tasks *memTasks, taskUC *fakeTaskUC) sync.UseCase {
	return usecase.New(&mockLogger{}, remote, links, tasks, taskUC, "", func() time.Time { return testNow })
}

func TestPush(t *testing.T) {
	ctx := context.Background()

	t.Run("unlinked tasks created remotely", func(t *testing.T) {
		tasks := &memTasks{tasks: []model.Task{
			{ID: "t1", Title: "Write report", Status: model.StatusNext},
			{ID: "t2", Title: "Maybe someday", Status: model.StatusSomeday},
			{ID: "t3", Title: "Manual", Type: model.TypeReference, Status: model.StatusNext},
		}}
		remote := &fakeRemote{}
		links := newMemLinks()
		uc := newSyncUC(remote, links, tasks, &fakeTaskUC{repo: tasks})

		out, err := uc.Push(ctx)
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if out.Created != 1 || out.Updated != 0 {
			t.Errorf("Push = %+v, want 1 created", out)
		}
		if len(remote.tasks) != 1 || remote.tasks[0].Title != "Write report" {
			t.Errorf("remote = %+v", remote.tasks)
		}
		if _, err := links.GetLink(ctx, "t1"); err != nil {
			t.Errorf("link not saved: %v", err)
		}
	})

	t.Run("linked task updated including completion", func(t *testing.T) {
		tasks := &memTasks{tasks: []model.Task{
			{ID: "t1", Title: "Renamed", Status: model.StatusCompleted, Completed: true},
		}}
		remote := &fakeRemote{tasks: []gtasks.RemoteTask{{ID: "r1", Title: "Old name"}}}
		links := newMemLinks()
		links.SaveLink(ctx, sync.Link{LocalID: "t1", RemoteID: "r1"})
		uc := newSyncUC(remote, links, tasks, &fakeTaskUC{repo: tasks})

		out, err := uc.Push(ctx)
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		if out.Updated != 1 {
			t.Errorf("Push = %+v, want 1 updated", out)
		}
		if !remote.tasks[0].Completed || remote.tasks[0].Title != "Renamed" {
			t.Errorf("remote not updated: %+v", remote.tasks[0])
		}
	})
}

func TestPull(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown remote task captured into inbox", func(t *testing.T) {
		tasks := &memTasks{}
		taskUC := &fakeTaskUC{repo: tasks}
		remote := &fakeRemote{tasks: []gtasks.RemoteTask{{ID: "r1", Title: "Buy milk"}}}
		links := newMemLinks()
		uc := newSyncUC(remote, links, tasks, taskUC)

		out, err := uc.Pull(ctx)
		if err != nil {
			t.Fatalf("Pull: %v", err)
		}
		if out.Created != 1 {
			t.Errorf("Pull = %+v, want 1 created", out)
		}
		if len(taskUC.created) != 1 || taskUC.created[0].Title != "Buy milk" {
			t.Errorf("created = %+v", taskUC.created)
		}
		if _, err := links.GetLinkByRemote(ctx, "r1"); err != nil {
			t.Errorf("link not saved: %v", err)
		}
	})

	t.Run("remote completion completes the local task", func(t *testing.T) {
		tasks := &memTasks{tasks: []model.Task{
			{ID: "t1", Title: "Write report", Status: model.StatusNext},
		}}
		taskUC := &fakeTaskUC{repo: tasks}
		remote := &fakeRemote{tasks: []gtasks.RemoteTask{{ID: "r1", Title: "Write report", Completed: true}}}
		links := newMemLinks()
		links.SaveLink(ctx, sync.Link{LocalID: "t1", RemoteID: "r1"})
		uc := newSyncUC(remote, links, tasks, taskUC)

		out, err := uc.Pull(ctx)
		if err != nil {
			t.Fatalf("Pull: %v", err)
		}
		if out.Completed != 1 {
			t.Errorf("Pull = %+v, want 1 completed", out)
		}
		if len(taskUC.completed) != 1 || taskUC.completed[0] != "t1" {
			t.Errorf("completed = %v", taskUC.completed)
		}
	})

	t.Run("stale link dropped when local task is gone", func(t *testing.T) {
		tasks := &memTasks{}
		taskUC := &fakeTaskUC{repo: tasks}
		remote := &fakeRemote{tasks: []gtasks.RemoteTask{{ID: "r1", Title: "Ghost", Completed: true}}}
		links := newMemLinks()
		links.SaveLink(ctx, sync.Link{LocalID: "gone", RemoteID: "r1"})
		uc := newSyncUC(remote, links, tasks, taskUC)

		if _, err := uc.Pull(ctx); err != nil {
			t.Fatalf("Pull: %v", err)
		}
		if _, err := links.GetLink(ctx, "gone"); err != sync.ErrLinkNotFound {
			t.Errorf("stale link kept: %v", err)
		}
	})

	t.Run("already completed local task untouched", func(t *testing.T) {
		tasks := &memTasks{tasks: []model.Task{
			{ID: "t1", Title: "Done", Status: model.StatusCompleted, Completed: true},
		}}
		taskUC := &fakeTaskUC{repo: tasks}
		remote := &fakeRemote{tasks: []gtasks.RemoteTask{{ID: "r1", Completed: true, Title: "Done"}}}
		links := newMemLinks()
		links.SaveLink(ctx, sync.Link{LocalID: "t1", RemoteID: "r1"})
		uc := newSyncUC(remote, links, tasks, taskUC)

		out, err := uc.Pull(ctx)
		if err != nil {
			t.Fatalf("Pull: %v", err)
		}
		if out.Completed != 0 || len(taskUC.completed) != 0 {
			t.Errorf("expected no completion, got %+v", out)
		}
	})
}

func TestFullSync(t *testing.T) {
	ctx := context.Background()

	tasks := &memTasks{tasks: []model.Task{
		{ID: "t1", Title: "Local only", Status: model.StatusNext},
	}}
	taskUC := &fakeTaskUC{repo: tasks}
	remote := &fakeRemote{tasks: []gtasks.RemoteTask{{ID: "r9", Title: "Remote only"}}}
	links := newMemLinks()
	uc := newSyncUC(remote, links, tasks, taskUC)

	out, err := uc.FullSync(ctx)
	if err != nil {
		t.Fatalf("FullSync: %v", err)
	}
	if out.Push.Created != 1 {
		t.Errorf("push = %+v, want 1 created", out.Push)
	}
	if out.Pull.Created != 1 {
		t.Errorf("pull = %+v, want 1 created", out.Pull)
	}
}
