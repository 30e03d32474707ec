package formatter

import (
	"fmt"
	"strings"

	"github.com/ramavi/balans/internal/domain"
)

// FormatSuggestions renders an AI (or fallback) suggestion list.
func FormatSuggestions(suggestions []domain.Suggestion, fromModel bool) string {
	var b strings.Builder

	for i, s := range suggestions {
		b.WriteString(fmt.Sprintf("%s %s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), Bold(s.Title), Dim("~"+FormatMinutes(s.EstimatedMin))))
		if s.Description != "" {
			b.WriteString("   " + StyleFg.Render(s.Description) + "\n")
		}
		if s.EmotionalImpact != "" {
			b.WriteString("   " + StyleAqua.Render(s.EmotionalImpact) + "\n")
		}
		if i < len(suggestions)-1 {
			b.WriteString("\n")
		}
	}

	if !fromModel {
		b.WriteString("\n" + Dim("(built-in suggestions; model unavailable)") + "\n")
	}
	return b.String()
}

// FormatUser renders a user profile with running stats.
func FormatUser(u *domain.User) string {
	var b strings.Builder

	b.WriteString(Bold(u.DisplayName) + "\n")
	if u.Email != "" {
		b.WriteString(Dim(u.Email) + "\n")
	}
	b.WriteString(Dim("Member since "+HumanDate(u.CreatedAt)) + "\n")

	b.WriteString("\n" + Header("Stats") + "\n")
	b.WriteString(fmt.Sprintf("  Tasks created    %d\n", u.Stats.TasksCreated))
	b.WriteString(fmt.Sprintf("  Tasks completed  %d\n", u.Stats.TasksCompleted))
	b.WriteString(fmt.Sprintf("  Time tracked     %s\n", FormatSeconds(u.Stats.TotalTimeTrackedSec)))

	b.WriteString("\n" + Header("Preferred daily hours") + "\n")
	b.WriteString(fmt.Sprintf("  Work & study   %.1fh\n", u.Allocation.WorkStudy))
	b.WriteString(fmt.Sprintf("  Friends        %.1fh\n", u.Allocation.SocialFriends))
	b.WriteString(fmt.Sprintf("  Partner        %.1fh\n", u.Allocation.SocialPartner))
	b.WriteString(fmt.Sprintf("  Entertainment  %.1fh\n", u.Allocation.Entertainment))
	b.WriteString(fmt.Sprintf("  Sleep          %.1fh\n", u.Allocation.Sleep))

	return b.String()
}
