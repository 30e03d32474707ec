package intelligence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ramavi/balans/internal/domain"
)

// fallbackCatalog holds canned suggestions per category, used whenever
// the model is disabled, unreachable, or returns garbage.
var fallbackCatalog = map[domain.Category][]domain.Suggestion{
	domain.CategoryWork: {
		{Title: "Clear your inbox", Description: "Process every unread message and leave the inbox empty.", EstimatedMin: 30, EmotionalImpact: "Relief from a visible backlog."},
		{Title: "Plan tomorrow's top three", Description: "Write down the three tasks that matter most for tomorrow.", EstimatedMin: 15, EmotionalImpact: "Calmer start to the next day."},
		{Title: "Tidy your workspace", Description: "Clear the desk and close stale browser tabs.", EstimatedMin: 20, EmotionalImpact: "A fresh sense of control."},
	},
	domain.CategoryStudy: {
		{Title: "Review yesterday's notes", Description: "Re-read and summarize what you studied most recently.", EstimatedMin: 25, EmotionalImpact: "Confidence that it is sticking."},
		{Title: "Practice problems", Description: "Work through a small set of exercises on the current topic.", EstimatedMin: 40, EmotionalImpact: "Satisfaction of concrete progress."},
		{Title: "Read one chapter", Description: "Read a chapter of a book related to what you want to learn.", EstimatedMin: 45, EmotionalImpact: "Steady sense of momentum."},
	},
	domain.CategoryEntertainment: {
		{Title: "Take a walk outside", Description: "Walk somewhere green without your phone.", EstimatedMin: 30, EmotionalImpact: "Cleared head and lifted mood."},
		{Title: "Watch something you enjoy", Description: "One episode or a film you have been meaning to see.", EstimatedMin: 60, EmotionalImpact: "Genuine rest."},
		{Title: "Play or make music", Description: "Spend unhurried time with a hobby that is only for you.", EstimatedMin: 45, EmotionalImpact: "Playfulness and recovery."},
	},
	domain.CategorySocialFriends: {
		{Title: "Call a close friend", Description: "Ring someone you have not spoken to in a while.", EstimatedMin: 30, EmotionalImpact: "Warmth of reconnecting."},
		{Title: "Plan a meetup", Description: "Pick a date and place and send the invitation.", EstimatedMin: 15, EmotionalImpact: "Anticipation of good company."},
		{Title: "Write a thoughtful message", Description: "Tell a friend specifically what you appreciate about them.", EstimatedMin: 10, EmotionalImpact: "Closeness and gratitude."},
	},
	domain.CategorySocialPartner: {
		{Title: "Cook dinner together", Description: "Make a meal as a team, phones away.", EstimatedMin: 60, EmotionalImpact: "Shared accomplishment and ease."},
		{Title: "Evening walk together", Description: "Take an unhurried walk and actually talk.", EstimatedMin: 40, EmotionalImpact: "Reconnection after a busy day."},
		{Title: "Plan a small surprise", Description: "Arrange something little your partner will not expect.", EstimatedMin: 20, EmotionalImpact: "Delight in giving."},
	},
}

// difficultyScale stretches canned estimates for harder variants.
var difficultyScale = map[domain.Difficulty]float64{
	domain.DifficultyRegular:     1,
	domain.DifficultyChallenging: 1.5,
	domain.DifficultyDifficult:   2,
}

// FallbackSuggestions returns deterministic suggestions for a category,
// with estimates scaled by difficulty.
func FallbackSuggestions(category domain.Category, difficulty domain.Difficulty) []domain.Suggestion {
	scale, ok := difficultyScale[difficulty]
	if !ok {
		scale = 1
	}

	base := fallbackCatalog[category]
	suggestions := make([]domain.Suggestion, len(base))
	for i, s := range base {
		s.EstimatedMin = int(float64(s.EstimatedMin) * scale)
		suggestions[i] = s
	}
	return suggestions
}

// DeterministicInsight summarizes balance data without a model: it names
// the dominant category and the areas with no tracked time.
func DeterministicInsight(analysis domain.CategoryAnalysis, balance domain.Balance) string {
	var tracked []domain.Category
	var idle []domain.Category
	for _, c := range domain.AllCategories {
		if analysis[c].TotalTimeSec > 0 {
			tracked = append(tracked, c)
		} else {
			idle = append(idle, c)
		}
	}

	if len(tracked) == 0 {
		return "No completed, time-tracked tasks yet. Complete a few tasks with tracking on and check back."
	}

	sort.Slice(tracked, func(i, j int) bool {
		return balance[tracked[i]] > balance[tracked[j]]
	})
	top := tracked[0]

	var b strings.Builder
	fmt.Fprintf(&b, "Most of your tracked time (%.0f%%) went to %s.", balance[top], top)
	if len(idle) > 0 {
		names := make([]string, len(idle))
		for i, c := range idle {
			names[i] = string(c)
		}
		fmt.Fprintf(&b, " No time tracked in: %s.", strings.Join(names, ", "))
		b.WriteString(" Consider planning one small task in a neglected area.")
	}
	return b.String()
}
