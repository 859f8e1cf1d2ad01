package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
)
