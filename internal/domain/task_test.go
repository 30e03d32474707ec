package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestTask() *Task {
	return &Task{
		ID:           "t1",
		UserID:       "u1",
		Category:     CategoryWork,
		Timeframe:    TimeframeToday,
		Difficulty:   DifficultyRegular,
		Name:         "Write report",
		EstimatedMin: 30,
		Status:       StatusPending,
		CreatedAt:    testNow.Add(-time.Hour),
	}
}

func TestStart_FromPending(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.Start(testNow))
	assert.Equal(t, StatusInProgress, task.Status)
	require.NotNil(t, task.TimeTracking.ActiveSessionStart)
	assert.Equal(t, testNow, *task.TimeTracking.ActiveSessionStart)
}

func TestStart_SessionAlreadyOpen(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.Start(testNow))

	err := task.Start(testNow.Add(time.Minute))
	require.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, testNow, *task.TimeTracking.ActiveSessionStart, "start time should not change")
	assert.Equal(t, StatusInProgress, task.Status)
}

func TestStart_Completed(t *testing.T) {
	task := newTestTask()
	task.Status = StatusCompleted
	err := task.Start(testNow)
	require.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestStop_ClosesSession(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.Start(testNow))

	s, err := task.Stop(testNow.Add(25 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1500), s.DurationSec)
	assert.Equal(t, int64(1500), task.TimeTracking.TotalTimeSpent)
	assert.Len(t, task.TimeTracking.Sessions, 1)
	assert.Nil(t, task.TimeTracking.ActiveSessionStart)
	assert.Equal(t, StatusInProgress, task.Status, "stopping is a pause, not a completion")
}

func TestStop_NoActiveSession(t *testing.T) {
	task := newTestTask()
	_, err := task.Stop(testNow)
	require.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStop_ClockSkewClampsToZero(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.Start(testNow))

	s, err := task.Stop(testNow.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.DurationSec, "skewed clock must not produce negative durations")
	assert.Equal(t, int64(0), task.TimeTracking.TotalTimeSpent)
}

func TestStartStop_Accumulates(t *testing.T) {
	task := newTestTask()
	durations := []time.Duration{10 * time.Minute, 5 * time.Minute, 90 * time.Second}

	now := testNow
	var wantTotal int64
	for _, d := range durations {
		require.NoError(t, task.Start(now))
		now = now.Add(d)
		_, err := task.Stop(now)
		require.NoError(t, err)
		now = now.Add(time.Minute) // gap between sessions
		wantTotal += int64(d / time.Second)
	}

	assert.Equal(t, wantTotal, task.TimeTracking.TotalTimeSpent)
	assert.Len(t, task.TimeTracking.Sessions, len(durations))

	var sum int64
	for _, s := range task.TimeTracking.Sessions {
		sum += s.DurationSec
	}
	assert.Equal(t, task.TimeTracking.TotalTimeSpent, sum, "total must equal sum of closed sessions")
}

func TestComplete_FoldsOpenSession(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.Start(testNow))

	end := testNow.Add(20 * time.Minute)
	closed, err := task.Complete(end, &EmotionSample{Level: 8, Note: "relieved"})
	require.NoError(t, err)

	require.NotNil(t, closed, "open session must be folded in")
	assert.Equal(t, int64(1200), closed.DurationSec)
	assert.Equal(t, int64(1200), task.TimeTracking.TotalTimeSpent)
	assert.Nil(t, task.TimeTracking.ActiveSessionStart)

	assert.Equal(t, StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, end, *task.CompletedAt)
	require.NotNil(t, task.EmotionTracking.After)
	assert.Equal(t, 8.0, task.EmotionTracking.After.Level)
	assert.Equal(t, end, task.EmotionTracking.After.RecordedAt)
}

func TestComplete_WithoutOpenSession(t *testing.T) {
	task := newTestTask()
	closed, err := task.Complete(testNow, nil)
	require.NoError(t, err)
	assert.Nil(t, closed)
	assert.Equal(t, StatusCompleted, task.Status)
	assert.Nil(t, task.EmotionTracking.After)
}

func TestComplete_Twice(t *testing.T) {
	task := newTestTask()
	first := testNow
	_, err := task.Complete(first, &EmotionSample{Level: 7})
	require.NoError(t, err)

	_, err = task.Complete(testNow.Add(time.Hour), &EmotionSample{Level: 2})
	require.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, first, *task.CompletedAt, "second complete must not touch fields")
	assert.Equal(t, 7.0, task.EmotionTracking.After.Level)
}

func TestRecordEmotion_BeforeIsWriteOnce(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.RecordEmotion(PhaseBefore, EmotionSample{Level: 5, RecordedAt: testNow}))

	err := task.RecordEmotion(PhaseBefore, EmotionSample{Level: 9, RecordedAt: testNow})
	require.ErrorIs(t, err, ErrAlreadyRecorded)
	assert.Equal(t, 5.0, task.EmotionTracking.Before.Level)
}

func TestRecordEmotion_DuringAppends(t *testing.T) {
	task := newTestTask()
	require.NoError(t, task.RecordEmotion(PhaseDuring, EmotionSample{Level: 4, RecordedAt: testNow}))
	require.NoError(t, task.RecordEmotion(PhaseDuring, EmotionSample{Level: 6, RecordedAt: testNow.Add(time.Minute)}))
	assert.Len(t, task.EmotionTracking.During, 2)
}

func TestRecordEmotion_DuringAfterCompletion(t *testing.T) {
	task := newTestTask()
	_, err := task.Complete(testNow, nil)
	require.NoError(t, err)

	err = task.RecordEmotion(PhaseDuring, EmotionSample{Level: 5})
	require.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestRecordEmotion_AfterBeforeCompletion(t *testing.T) {
	task := newTestTask()
	err := task.RecordEmotion(PhaseAfter, EmotionSample{Level: 5})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRecordEmotion_AfterAlreadyRecorded(t *testing.T) {
	task := newTestTask()
	_, err := task.Complete(testNow, &EmotionSample{Level: 7})
	require.NoError(t, err)

	err = task.RecordEmotion(PhaseAfter, EmotionSample{Level: 3})
	require.ErrorIs(t, err, ErrAlreadyRecorded)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Task)
		wantErr string
	}{
		{"valid", func(*Task) {}, ""},
		{"missing user", func(t *Task) { t.UserID = "" }, "user id"},
		{"missing name", func(t *Task) { t.Name = "" }, "name"},
		{"bad category", func(t *Task) { t.Category = "chores" }, "category"},
		{"bad timeframe", func(t *Task) { t.Timeframe = "someday" }, "timeframe"},
		{"bad difficulty", func(t *Task) { t.Difficulty = "easy" }, "difficulty"},
		{"zero estimate", func(t *Task) { t.EstimatedMin = 0 }, "estimated time"},
		{"negative estimate", func(t *Task) { t.EstimatedMin = -10 }, "estimated time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := newTestTask()
			tc.mutate(task)
			err := task.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
