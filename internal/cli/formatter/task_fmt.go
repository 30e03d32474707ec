package formatter

import (
	"fmt"
	"strings"

	"github.com/ramavi/balans/internal/domain"
)

// FormatTaskList renders tasks as a table, newest first (list order is
// preserved).
func FormatTaskList(tasks []*domain.Task) string {
	headers := []string{"ID", "NAME", "CATEGORY", "STATUS", "EST", "TRACKED", "CREATED"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		name := Bold(t.Name)
		if pill := TrackingPill(t); pill != "" {
			name += " " + pill
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			name,
			CategoryBadge(t.Category),
			StatusPill(t.Status),
			FormatMinutes(t.EstimatedMin),
			StyleFg.Render(FormatSeconds(t.TimeTracking.TotalTimeSpent)),
			Dim(HumanTimestamp(t.CreatedAt)),
		})
	}

	return RenderTable(headers, rows)
}

// FormatTaskDetail renders one task with its sessions and emotions.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder

	title := Bold(t.Name)
	if t.IsAIGenerated {
		title += " " + StyleAqua.Render("✦ suggested")
	}
	b.WriteString(title + "\n")
	if t.Description != "" {
		b.WriteString(Dim(t.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s  %s\n", CategoryBadge(t.Category), StatusPill(t.Status), Dim(string(t.Timeframe)+" / "+string(t.Difficulty))))
	b.WriteString(fmt.Sprintf("Estimated %s, tracked %s\n", FormatMinutes(t.EstimatedMin), Bold(FormatSeconds(t.TimeTracking.TotalTimeSpent))))
	if t.HasOpenSession() {
		b.WriteString(StyleRed.Render("⏺ tracking since "+HumanTimestamp(*t.TimeTracking.ActiveSessionStart)) + "\n")
	}
	if t.CompletedAt != nil {
		b.WriteString(Dim("Completed "+HumanTimestamp(*t.CompletedAt)) + "\n")
	}

	if len(t.TimeTracking.Sessions) > 0 {
		b.WriteString("\n" + Header("Sessions") + "\n")
		for _, s := range t.TimeTracking.Sessions {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Dim(HumanTimestamp(s.StartedAt)), FormatSeconds(s.DurationSec)))
		}
	}

	emotions := formatEmotions(t.EmotionTracking)
	if emotions != "" {
		b.WriteString("\n" + Header("Emotions") + "\n" + emotions)
	}

	return b.String()
}

func formatEmotions(e domain.EmotionTracking) string {
	var b strings.Builder

	writeSample := func(label string, s domain.EmotionSample) {
		b.WriteString(fmt.Sprintf("  %-7s %s", label, EmotionDots(s.Level)))
		if s.Note != "" {
			b.WriteString("  " + Dim(s.Note))
		}
		b.WriteString("\n")
	}

	if e.Before != nil {
		writeSample("before", *e.Before)
	}
	for _, s := range e.During {
		writeSample("during", s)
	}
	if e.After != nil {
		writeSample("after", *e.After)
	}
	return b.String()
}
