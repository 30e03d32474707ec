package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ramavi/balans/internal/domain"
)

func sampleTask() *domain.Task {
	created := time.Now().Add(-2 * time.Hour)
	return &domain.Task{
		ID:           "11111111-2222-3333-4444-555555555555",
		UserID:       "u1",
		Category:     domain.CategoryWork,
		Timeframe:    domain.TimeframeToday,
		Difficulty:   domain.DifficultyRegular,
		Name:         "Write the report",
		Description:  "Quarterly numbers for the team.",
		EstimatedMin: 45,
		Status:       domain.StatusInProgress,
		TimeTracking: domain.TimeTracking{TotalTimeSpent: 900},
		CreatedAt:    created,
	}
}

func TestFormatTaskList(t *testing.T) {
	out := FormatTaskList([]*domain.Task{sampleTask()})
	assert.Contains(t, out, "Write the report")
	assert.Contains(t, out, "11111111")
	assert.Contains(t, out, "15m")
	assert.Contains(t, out, "In Progress")
}

func TestFormatTaskList_MarksOpenSession(t *testing.T) {
	task := sampleTask()
	start := time.Now().Add(-10 * time.Minute)
	task.TimeTracking.ActiveSessionStart = &start

	out := FormatTaskList([]*domain.Task{task})
	assert.Contains(t, out, "tracking")
}

func TestFormatTaskDetail(t *testing.T) {
	task := sampleTask()
	task.TimeTracking.Sessions = []domain.Session{
		{StartedAt: time.Now().Add(-time.Hour), EndedAt: time.Now().Add(-45 * time.Minute), DurationSec: 900},
	}
	task.EmotionTracking.Before = &domain.EmotionSample{Level: 4, Note: "a bit tense", RecordedAt: time.Now()}

	out := FormatTaskDetail(task)
	assert.Contains(t, out, "Write the report")
	assert.Contains(t, out, "Quarterly numbers")
	assert.Contains(t, out, "SESSIONS")
	assert.Contains(t, out, "EMOTIONS")
	assert.Contains(t, out, "a bit tense")
	assert.Contains(t, out, "4/10")
}

func TestFormatTaskDetail_MarksSuggested(t *testing.T) {
	task := sampleTask()
	task.IsAIGenerated = true

	assert.Contains(t, FormatTaskDetail(task), "suggested")
}

func TestFormatUser(t *testing.T) {
	u := &domain.User{
		ID:          "u1",
		Email:       "ram@example.com",
		DisplayName: "Ram",
		Language:    "en",
		Allocation:  domain.DefaultTimeAllocation,
		Stats:       domain.UserStats{TasksCreated: 5, TasksCompleted: 3, TotalTimeTrackedSec: 7200},
		CreatedAt:   time.Now().Add(-48 * time.Hour),
	}

	out := FormatUser(u)
	assert.Contains(t, out, "Ram")
	assert.Contains(t, out, "ram@example.com")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "6.0h")
}
