package formatter

import (
	"fmt"
	"strings"
	"time"
)

// FormatSeconds converts tracked seconds into a compact human form such
// as "1h 23m" or "45s".
func FormatSeconds(sec int64) string {
	if sec <= 0 {
		return "0s"
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	s := sec % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatMinutes converts an estimate in minutes into human form.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	return FormatSeconds(int64(min) * 60)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// EmotionDots renders a 1-10 emotion level as dots plus the number,
// colored by how the user felt.
func EmotionDots(level float64) string {
	n := int(level)
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}

	style := StyleGreen
	if level < 4 {
		style = StyleRed
	} else if level < 7 {
		style = StyleYellow
	}

	dots := strings.Repeat("●", n) + strings.Repeat("○", 10-n)
	return fmt.Sprintf("%s %s", style.Render(dots), StyleFg.Render(fmt.Sprintf("%.0f/10", level)))
}
