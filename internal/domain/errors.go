package domain

import "errors"

var (
	// ErrInvalidState indicates an operation that is illegal for the
	// task's current lifecycle state, such as starting a session while
	// one is already open.
	ErrInvalidState = errors.New("operation invalid for current task state")

	// ErrNoActiveSession indicates an attempt to stop tracking when no
	// session is open.
	ErrNoActiveSession = errors.New("no active tracking session")

	// ErrAlreadyCompleted indicates a lifecycle operation on a task
	// whose status is already completed.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrAlreadyRecorded indicates a write to a write-once emotion slot
	// (before or after) that already holds a sample.
	ErrAlreadyRecorded = errors.New("emotion sample already recorded")
)
