package domain

// CategoryStats is the derived per-category slice of a time analysis.
// AverageTimeSec is TotalTimeSec / CompletedTasks, or 0 when nothing is
// completed.
type CategoryStats struct {
	TotalTasks     int
	CompletedTasks int
	TotalTimeSec   int64
	AverageTimeSec float64
}

// CategoryAnalysis maps every category in AllCategories to its stats.
// Categories with no tasks are present with zeroed fields.
type CategoryAnalysis map[Category]CategoryStats

// Balance is the relative share of tracked time each category occupies,
// as a percentage of all tracked time. All zero when nothing is tracked.
type Balance map[Category]float64

// Suggestion is one AI-proposed task for a category/timeframe/difficulty
// combination.
type Suggestion struct {
	Title           string
	Description     string
	EstimatedMin    int
	EmotionalImpact string
}
