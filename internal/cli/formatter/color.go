package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ramavi/balans/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// categoryStyles assigns each life category a stable color.
var categoryStyles = map[domain.Category]lipgloss.Style{
	domain.CategoryWork:          StyleBlue,
	domain.CategoryStudy:         StylePurple,
	domain.CategoryEntertainment: StyleYellow,
	domain.CategorySocialFriends: StyleGreen,
	domain.CategorySocialPartner: StyleRed,
}

// CategoryBadge returns the category name in its assigned color.
func CategoryBadge(c domain.Category) string {
	if style, ok := categoryStyles[c]; ok {
		return style.Render(CategoryLabel(c))
	}
	return StyleDim.Render(string(c))
}

// CategoryLabel returns the human display name for a category.
func CategoryLabel(c domain.Category) string {
	switch c {
	case domain.CategoryWork:
		return "Work"
	case domain.CategoryStudy:
		return "Study"
	case domain.CategoryEntertainment:
		return "Entertainment"
	case domain.CategorySocialFriends:
		return "Friends"
	case domain.CategorySocialPartner:
		return "Partner"
	}
	return string(c)
}

// StatusPill returns a colored status indicator for a task.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.StatusPending:
		return StyleBlue.Render("○ Pending")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(status))
	}
}

// TrackingPill marks a task with an open tracking session.
func TrackingPill(t *domain.Task) string {
	if t.HasOpenSession() {
		return StyleRed.Render("⏺ tracking")
	}
	return ""
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
