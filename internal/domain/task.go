package domain

import (
	"fmt"
	"time"
)

// Session is one contiguous interval of tracked time on a task, bounded
// by a start and a stop.
type Session struct {
	ID          string
	TaskID      string
	StartedAt   time.Time
	EndedAt     time.Time
	DurationSec int64
}

// EmotionSample is a single mood reading attached to a task.
type EmotionSample struct {
	Level      float64
	Note       string
	RecordedAt time.Time
}

// TimeTracking accumulates elapsed time across a task's work sessions.
// At most one session is open at a time; TotalTimeSpent always equals the
// sum of all closed session durations.
type TimeTracking struct {
	ActiveSessionStart *time.Time
	TotalTimeSpent     int64 // seconds
	Sessions           []Session
}

// EmotionTracking holds the mood samples recorded around a task.
// Before and After hold at most one sample each; During is append-only
// while the task is not completed.
type EmotionTracking struct {
	Before *EmotionSample
	During []EmotionSample
	After  *EmotionSample
}

// Task is one user-authored unit of activity in a life category.
type Task struct {
	ID            string
	UserID        string
	Category      Category
	Timeframe     Timeframe
	Difficulty    Difficulty
	Name          string
	Description   string
	EstimatedMin  int
	Status        TaskStatus
	IsAIGenerated bool

	TimeTracking    TimeTracking
	EmotionTracking EmotionTracking

	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Validate checks the boundary-supplied fields of a new task.
func (t *Task) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("task user id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if !t.Timeframe.Valid() {
		return fmt.Errorf("invalid timeframe %q", t.Timeframe)
	}
	if !t.Difficulty.Valid() {
		return fmt.Errorf("invalid difficulty %q", t.Difficulty)
	}
	if t.EstimatedMin <= 0 {
		return fmt.Errorf("estimated time must be positive, got %d", t.EstimatedMin)
	}
	return nil
}

// IsCompleted reports whether the task is in its terminal state.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// HasOpenSession reports whether a tracking session is currently open.
func (t *Task) HasOpenSession() bool {
	return t.TimeTracking.ActiveSessionStart != nil
}

// Start opens a tracking session at now and moves the task to
// in-progress. Legal only from pending or in-progress with no open
// session.
func (t *Task) Start(now time.Time) error {
	if t.IsCompleted() {
		return ErrAlreadyCompleted
	}
	if t.HasOpenSession() {
		return fmt.Errorf("session already open: %w", ErrInvalidState)
	}
	start := now
	t.TimeTracking.ActiveSessionStart = &start
	t.Status = StatusInProgress
	return nil
}

// Stop closes the open session at now and returns it. The closed session
// is appended to the ledger and its duration added to TotalTimeSpent.
// A now earlier than the recorded start clamps the duration to zero
// rather than producing a negative value. Status stays in-progress:
// stopping is a pause, not a completion.
func (t *Task) Stop(now time.Time) (Session, error) {
	if !t.HasOpenSession() {
		return Session{}, ErrNoActiveSession
	}
	start := *t.TimeTracking.ActiveSessionStart
	duration := int64(now.Sub(start) / time.Second)
	if duration < 0 {
		duration = 0
	}
	s := Session{
		TaskID:      t.ID,
		StartedAt:   start,
		EndedAt:     now,
		DurationSec: duration,
	}
	t.TimeTracking.Sessions = append(t.TimeTracking.Sessions, s)
	t.TimeTracking.TotalTimeSpent += duration
	t.TimeTracking.ActiveSessionStart = nil
	return s, nil
}

// Complete moves the task to its terminal state at now and records the
// final emotion sample. An open session is folded in first via Stop, so
// no task is ever completed with an open session. The returned session
// is non-nil iff a session was folded. A second Complete fails with
// ErrAlreadyCompleted and changes nothing.
func (t *Task) Complete(now time.Time, final *EmotionSample) (*Session, error) {
	if t.IsCompleted() {
		return nil, ErrAlreadyCompleted
	}
	var closed *Session
	if t.HasOpenSession() {
		s, err := t.Stop(now)
		if err != nil {
			return nil, err
		}
		closed = &s
	}
	t.Status = StatusCompleted
	completedAt := now
	t.CompletedAt = &completedAt
	if final != nil {
		sample := *final
		if sample.RecordedAt.IsZero() {
			sample.RecordedAt = now
		}
		t.EmotionTracking.After = &sample
	}
	return closed, nil
}

// RecordEmotion writes a sample into the given phase slot. Before is
// write-once: a second write fails with ErrAlreadyRecorded. During is
// append-only while the task is not completed. After is owned by
// Complete; recording it directly is rejected until the task is
// completed, and rejected with ErrAlreadyRecorded once a final sample
// exists.
func (t *Task) RecordEmotion(phase EmotionPhase, sample EmotionSample) error {
	switch phase {
	case PhaseBefore:
		if t.EmotionTracking.Before != nil {
			return fmt.Errorf("before sample: %w", ErrAlreadyRecorded)
		}
		t.EmotionTracking.Before = &sample
	case PhaseDuring:
		if t.IsCompleted() {
			return ErrAlreadyCompleted
		}
		t.EmotionTracking.During = append(t.EmotionTracking.During, sample)
	case PhaseAfter:
		if t.EmotionTracking.After != nil {
			return fmt.Errorf("after sample: %w", ErrAlreadyRecorded)
		}
		if !t.IsCompleted() {
			return fmt.Errorf("after sample before completion: %w", ErrInvalidState)
		}
		t.EmotionTracking.After = &sample
	default:
		return fmt.Errorf("invalid emotion phase %q", phase)
	}
	return nil
}
