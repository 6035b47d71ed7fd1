package usecase

import (
	"time"

	"gtd-task-management/internal/sync"
	syncRepo "gtd-task-management/internal/sync/repository"
	"gtd-task-management/internal/task"
	taskRepo "gtd-task-management/internal/task/repository"
	pkgLog "gtd-task-management/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	remote sync.RemoteStore
	links  syncRepo.Repository
	tasks  taskRepo.Repository
	taskUC task.UseCase
	listID string
	now    func() time.Time
}

// New creates the sync UseCase. taskUC is used for inbound mutations so
// remote completions run the full completion semantics (recurrence
// rollover, unblocking); tasks is used read-only for the outbound pass.
func New(
	l pkgLog.Logger,
	remote sync.RemoteStore,
	links syncRepo.Repository,
	tasks taskRepo.Repository,
	taskUC task.UseCase,
	listID string,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:      l,
		remote: remote,
		links:  links,
		tasks:  tasks,
		taskUC: taskUC,
		listID: listID,
		now:    now,
	}
}
