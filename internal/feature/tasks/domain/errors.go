// Package domain defines domain-level errors for the tasks feature.
package domain

import "errors"

var (
	// ErrTaskNotFound indicates that no task matched the lookup.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnauthorized indicates the caller does not own the task. It is
	// deliberately distinct from ErrTaskNotFound so cross-owner access
	// never reveals whether a task exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTitleRequired indicates an empty or blank task title.
	ErrTitleRequired = errors.New("task title must not be empty")
)
