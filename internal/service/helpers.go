package service

import (
	"time"

	"github.com/ramavi/balans/internal/domain"
)

// filterByWindow retains tasks completed at or after now minus the window
// length. With a window active, tasks without a completion time are
// excluded. The unrestricted window passes everything through.
func filterByWindow(tasks []*domain.Task, window domain.Window, now time.Time) []*domain.Task {
	if window == domain.WindowAll {
		return tasks
	}
	cutoff := now.Add(-time.Duration(window.Seconds()) * time.Second)

	var kept []*domain.Task
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		if !t.CompletedAt.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// aggregateByCategory folds a task collection into per-category stats.
// Every category appears in the result, zeroed when it has no tasks.
func aggregateByCategory(tasks []*domain.Task) domain.CategoryAnalysis {
	analysis := make(domain.CategoryAnalysis, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		analysis[c] = domain.CategoryStats{}
	}

	for _, t := range tasks {
		stats, ok := analysis[t.Category]
		if !ok {
			continue
		}
		stats.TotalTasks++
		if t.Status == domain.StatusCompleted {
			stats.CompletedTasks++
			stats.TotalTimeSec += t.TimeTracking.TotalTimeSpent
		}
		analysis[t.Category] = stats
	}

	for c, stats := range analysis {
		if stats.CompletedTasks > 0 {
			stats.AverageTimeSec = float64(stats.TotalTimeSec) / float64(stats.CompletedTasks)
			analysis[c] = stats
		}
	}
	return analysis
}

// balanceFromAnalysis computes each category's share of all tracked time
// as a percentage. All shares are 0 when nothing is tracked.
func balanceFromAnalysis(analysis domain.CategoryAnalysis) domain.Balance {
	var total int64
	for _, stats := range analysis {
		total += stats.TotalTimeSec
	}

	balance := make(domain.Balance, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		if total == 0 {
			balance[c] = 0
			continue
		}
		balance[c] = float64(analysis[c].TotalTimeSec) / float64(total) * 100
	}
	return balance
}
