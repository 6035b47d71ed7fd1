package project

import "errors"

// Domain-specific errors for the project package.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrEmptyTitle      = errors.New("project title is empty")
	ErrInvalidStatus   = errors.New("invalid project status")
)
