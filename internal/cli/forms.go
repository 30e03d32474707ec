package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/ramavi/balans/internal/domain"
)

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}
	return opts
}

// runTaskForm collects task fields interactively. Flag values already
// supplied are used as form defaults.
func runTaskForm(name, description, category, timeframe, difficulty *string, estimate *int) error {
	estimateStr := strconv.Itoa(*estimate)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(category),
			huh.NewSelect[string]().
				Title("Timeframe").
				Options(
					huh.NewOption("Today", string(domain.TimeframeToday)),
					huh.NewOption("This week", string(domain.TimeframeThisWeek)),
					huh.NewOption("This month", string(domain.TimeframeThisMonth)),
				).
				Value(timeframe),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Regular", string(domain.DifficultyRegular)),
					huh.NewOption("Challenging", string(domain.DifficultyChallenging)),
					huh.NewOption("Difficult", string(domain.DifficultyDifficult)),
				).
				Value(difficulty),
			huh.NewInput().
				Title("Estimated minutes").
				Value(&estimateStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number of minutes")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(estimateStr))
	if err != nil {
		return fmt.Errorf("invalid estimate %q: %w", estimateStr, err)
	}
	*estimate = n
	return nil
}

// runEmotionForm asks for an emotion level and note. A skipped form
// returns a nil sample.
func runEmotionForm(title string) (*domain.EmotionSample, error) {
	levelStr := ""
	note := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("1-10, empty to skip").
				Value(&levelStr).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					n, err := strconv.ParseFloat(s, 64)
					if err != nil || n < 1 || n > 10 {
						return fmt.Errorf("enter a number from 1 to 10")
					}
					return nil
				}),
			huh.NewInput().
				Title("Note").
				Placeholder("optional").
				Value(&note),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	levelStr = strings.TrimSpace(levelStr)
	if levelStr == "" {
		return nil, nil
	}
	level, err := strconv.ParseFloat(levelStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid level %q: %w", levelStr, err)
	}
	return &domain.EmotionSample{Level: level, Note: note}, nil
}
