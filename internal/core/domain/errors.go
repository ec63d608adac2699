package domain

import "errors"

var (
	ErrEmptyName       = errors.New("task name is empty")
	ErrInvalidPriority = errors.New("invalid task priority")
)
