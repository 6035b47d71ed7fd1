package usecase

import (
	"time"

	"gtd-task-management/internal/project/repository"
	pkgLog "gtd-task-management/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	tasks repository.TaskUnlinker
	now   func() time.Time
}

// New creates a new project UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	tasks repository.TaskUnlinker,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		tasks: tasks,
		now:   now,
	}
}
