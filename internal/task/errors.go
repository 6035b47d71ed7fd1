package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("task title is empty")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInvalidEnergy     = errors.New("invalid energy level")
	ErrSelfDependency    = errors.New("task cannot depend on itself")
	ErrSubtaskOutOfRange = errors.New("subtask index out of range")
	ErrNotCompleted      = errors.New("task is not completed")
)
