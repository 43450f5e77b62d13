package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrCategoryNotFound is returned when a category is not found
	ErrCategoryNotFound = errors.New("category not found")

	// ErrColumnNotFound is returned when a column is not found
	ErrColumnNotFound = errors.New("column not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrMemberNotFound is returned when a team member is not found
	ErrMemberNotFound = errors.New("team member not found")
)
