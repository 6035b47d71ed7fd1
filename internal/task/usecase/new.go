package usecase

import (
	"time"

	"gtd-task-management/internal/task/repository"
	"gtd-task-management/pkg/datemath"
	pkgLog "gtd-task-management/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	projects repository.ProjectReader
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance. The now function is the clock
// used for all date-sensitive evaluation; pass time.Now outside of tests.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	projects repository.ProjectReader,
	dateMath *datemath.Parser,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		projects: projects,
		dateMath: dateMath,
		now:      now,
	}
}
