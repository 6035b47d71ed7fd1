package usecase

import (
	"context"
	"errors"

	"gtd-task-management/internal/model"
	"gtd-task-management/internal/sync"
	"gtd-task-management/internal/task"
	"gtd-task-management/pkg/gtasks"
)

// Push sends local tasks to the remote list. Unlinked active tasks are
// created remotely; linked tasks are updated in place, including the
// completed flag so finishing a task locally finishes it remotely.
func (uc *implUseCase) Push(ctx context.Context) (sync.PushOutput, error) {
	local, err := uc.tasks.AllTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "sync.Push AllTasks: %v", err)
		return sync.PushOutput{}, err
	}

	var out sync.PushOutput
	for _, t := range local {
		// Reference material and someday items stay local.
		if t.Type == model.TypeReference || t.Status == model.StatusSomeday {
			continue
		}

		link, err := uc.links.GetLink(ctx, t.ID)
		switch {
		case errors.Is(err, sync.ErrLinkNotFound):
			if t.Completed {
				// Never been pushed and already done; nothing to mirror.
				continue
			}
			remote, err := uc.remote.UpsertTask(ctx, uc.upsertRequest(t, ""))
			if err != nil {
				uc.l.Errorf(ctx, "sync.Push create %s: %v", t.ID, err)
				return out, err
			}
			if err := uc.saveLink(ctx, t.ID, remote); err != nil {
				return out, err
			}
			out.Created++

		case err != nil:
			return out, err

		default:
			remote, err := uc.remote.UpsertTask(ctx, uc.upsertRequest(t, link.RemoteID))
			if err != nil {
				uc.l.Errorf(ctx, "sync.Push update %s: %v", t.ID, err)
				return out, err
			}
			if err := uc.saveLink(ctx, t.ID, remote); err != nil {
				return out, err
			}
			out.Updated++
		}
	}

	uc.l.Infof(ctx, "sync.Push: %d created, %d updated", out.Created, out.Updated)
	return out, nil
}

// Pull applies remote changes locally. Remote tasks without a link are
// captured into the inbox; remote completions complete the linked local
// task through the task usecase so recurrence and unblocking apply.
func (uc *implUseCase) Pull(ctx context.Context) (sync.PullOutput, error) {
	remote, err := uc.remote.ListTasks(ctx, gtasks.ListTasksRequest{
		ListID:        uc.listID,
		ShowCompleted: true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "sync.Pull ListTasks: %v", err)
		return sync.PullOutput{}, err
	}

	var out sync.PullOutput
	for _, rt := range remote {
		if rt.Deleted {
			continue
		}

		link, err := uc.links.GetLinkByRemote(ctx, rt.ID)
		if errors.Is(err, sync.ErrLinkNotFound) {
			if rt.Completed || rt.Title == "" {
				continue
			}
			created, err := uc.taskUC.Create(ctx, task.CreateTaskInput{
				Title:   rt.Title,
				Notes:   rt.Notes,
				DueDate: rt.Due,
			})
			if err != nil {
				uc.l.Errorf(ctx, "sync.Pull create from %s: %v", rt.ID, err)
				return out, err
			}
			if err := uc.links.SaveLink(ctx, sync.Link{
				LocalID:    created.Task.ID,
				RemoteID:   rt.ID,
				RemoteList: uc.remoteList(),
				SyncedAt:   uc.now(),
			}); err != nil {
				return out, err
			}
			out.Created++
			continue
		}
		if err != nil {
			return out, err
		}

		if !rt.Completed {
			continue
		}
		local, err := uc.tasks.GetTask(ctx, link.LocalID)
		if errors.Is(err, task.ErrTaskNotFound) {
			// Local task is gone; drop the stale link.
			if err := uc.links.DeleteLink(ctx, link.LocalID); err != nil {
				uc.l.Warnf(ctx, "sync.Pull drop stale link %s: %v", link.LocalID, err)
			}
			continue
		}
		if err != nil {
			return out, err
		}
		if local.Completed {
			continue
		}

		if _, err := uc.taskUC.Complete(ctx, local.ID); err != nil {
			uc.l.Errorf(ctx, "sync.Pull complete %s: %v", local.ID, err)
			return out, err
		}
		out.Completed++
	}

	uc.l.Infof(ctx, "sync.Pull: %d created, %d completed", out.Created, out.Completed)
	return out, nil
}

// FullSync runs Push then Pull.
func (uc *implUseCase) FullSync(ctx context.Context) (sync.SyncOutput, error) {
	push, err := uc.Push(ctx)
	if err != nil {
		return sync.SyncOutput{}, err
	}
	pull, err := uc.Pull(ctx)
	if err != nil {
		return sync.SyncOutput{}, err
	}
	return sync.SyncOutput{Push: push, Pull: pull}, nil
}

func (uc *implUseCase) upsertRequest(t model.Task, remoteID string) gtasks.UpsertTaskRequest {
	return gtasks.UpsertTaskRequest{
		ListID:    uc.listID,
		TaskID:    remoteID,
		Title:     t.Title,
		Notes:     t.Notes,
		Completed: t.Completed,
		Due:       t.DueDate,
	}
}

func (uc *implUseCase) saveLink(ctx context.Context, localID string, remote *gtasks.RemoteTask) error {
	err := uc.links.SaveLink(ctx, sync.Link{
		LocalID:    localID,
		RemoteID:   remote.ID,
		RemoteList: uc.remoteList(),
		SyncedAt:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "sync: save link %s -> %s: %v", localID, remote.ID, err)
	}
	return err
}

func (uc *implUseCase) remoteList() string {
	if uc.listID == "" {
		return gtasks.DefaultListID
	}
	return uc.listID
}
