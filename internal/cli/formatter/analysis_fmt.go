package formatter

import (
	"fmt"
	"strings"

	"github.com/ramavi/balans/internal/domain"
)

const balanceBarWidth = 20

// FormatAnalysis renders per-category time analytics as a table, in the
// fixed category display order.
func FormatAnalysis(analysis domain.CategoryAnalysis, window domain.Window) string {
	headers := []string{"CATEGORY", "TASKS", "DONE", "TRACKED", "AVG/TASK"}
	rows := make([][]string, 0, len(domain.AllCategories))

	for _, c := range domain.AllCategories {
		stats := analysis[c]
		rows = append(rows, []string{
			CategoryBadge(c),
			fmt.Sprintf("%d", stats.TotalTasks),
			fmt.Sprintf("%d", stats.CompletedTasks),
			StyleFg.Render(FormatSeconds(stats.TotalTimeSec)),
			Dim(FormatSeconds(int64(stats.AverageTimeSec))),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Dim("Window: "+windowLabel(window)) + "\n")
	return b.String()
}

// FormatBalance renders the relative time split as colored bars.
func FormatBalance(balance domain.Balance, window domain.Window) string {
	var b strings.Builder

	var total float64
	for _, c := range domain.AllCategories {
		total += balance[c]
	}

	for _, c := range domain.AllCategories {
		pct := balance[c]
		filled := int(pct / 100 * balanceBarWidth)
		if filled > balanceBarWidth {
			filled = balanceBarWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", balanceBarWidth-filled)

		style, ok := categoryStyles[c]
		if !ok {
			style = StyleDim
		}
		b.WriteString(fmt.Sprintf("%-14s %s %5.1f%%\n", CategoryLabel(c), style.Render(bar), pct))
	}

	if total == 0 {
		b.WriteString("\n" + Dim("No tracked time in this window yet.") + "\n")
	}
	b.WriteString("\n" + Dim("Window: "+windowLabel(window)) + "\n")
	return b.String()
}

func windowLabel(w domain.Window) string {
	switch w {
	case domain.WindowDay:
		return "last 24 hours"
	case domain.WindowWeek:
		return "last 7 days"
	case domain.WindowMonth:
		return "last 30 days"
	}
	return "all time"
}
