package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ramavi/balans/internal/cli/formatter"
	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/intelligence"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var category, timeframe, difficulty string
	var save int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest tasks for a life category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}
			tf, err := domain.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}
			diff, err := domain.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			user, err := app.Users.GetByID(ctx, app.UserID)
			if err != nil {
				user = nil
			}

			suggestions := app.Suggestions
			if suggestions == nil {
				suggestions = intelligence.NewSuggestionService(nil, nil)
			}
			result, err := suggestions.GenerateSuggestions(ctx, intelligence.SuggestionRequest{
				Category:   cat,
				Timeframe:  tf,
				Difficulty: diff,
				User:       user,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSuggestions(result.Suggestions, result.FromModel))

			if save == 0 {
				return nil
			}
			if save < 1 || save > len(result.Suggestions) {
				return fmt.Errorf("--save must be between 1 and %d", len(result.Suggestions))
			}

			if _, err := app.Users.EnsureUser(ctx, app.UserID); err != nil {
				return err
			}

			picked := result.Suggestions[save-1]
			t := &domain.Task{
				ID:            uuid.New().String(),
				UserID:        app.UserID,
				Category:      cat,
				Timeframe:     tf,
				Difficulty:    diff,
				Name:          picked.Title,
				Description:   picked.Description,
				EstimatedMin:  picked.EstimatedMin,
				IsAIGenerated: true,
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s [%s]\n", t.Name, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Life category (work|study|entertainment|socialFriends|socialPartner)")
	cmd.Flags().StringVar(&timeframe, "timeframe", string(domain.TimeframeToday), "Timeframe (today|thisWeek|thisMonth)")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(domain.DifficultyRegular), "Difficulty (regular|challenging|difficult)")
	cmd.Flags().IntVar(&save, "save", 0, "Create a task from suggestion number N")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
