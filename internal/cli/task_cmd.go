package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ramavi/balans/internal/cli/formatter"
	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/repository"
	"github.com/spf13/cobra"
)

// resolveTaskID accepts a full task UUID or a unique prefix.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx, app.UserID, repository.TaskFilter{})
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskCreateCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskUpdateCmd(app),
		newTaskStartCmd(app),
		newTaskStopCmd(app),
		newTaskCompleteCmd(app),
		newTaskDeleteCmd(app),
		newTaskEmotionCmd(app),
	)

	return cmd
}

func newTaskCreateCmd(app *App) *cobra.Command {
	var name, description, category, timeframe, difficulty string
	var estimate int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without --name, offer the interactive form on a terminal.
			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required")
				}
				if err := runTaskForm(&name, &description, &category, &timeframe, &difficulty, &estimate); err != nil {
					return err
				}
			}

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

			ctx := context.Background()
			// A bare profile is fine for task work; register lazily.
			if _, err := app.Users.EnsureUser(ctx, app.UserID); err != nil {
				return err
			}

			t := &domain.Task{
				ID:           uuid.New().String(),
				UserID:       app.UserID,
				Category:     cat,
				Timeframe:    tf,
				Difficulty:   diff,
				Name:         name,
				Description:  description,
				EstimatedMin: estimate,
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s [%s]\n", t.Name, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&category, "category", "", "Life category (work|study|entertainment|socialFriends|socialPartner)")
	cmd.Flags().StringVar(&timeframe, "timeframe", string(domain.TimeframeToday), "Timeframe (today|thisWeek|thisMonth)")
	cmd.Flags().StringVar(&difficulty, "difficulty", string(domain.DifficultyRegular), "Difficulty (regular|challenging|difficult)")
	cmd.Flags().IntVar(&estimate, "estimate", 30, "Estimated time in minutes")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var category, timeframe, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var f repository.TaskFilter
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				f.Category = &c
			}
			if timeframe != "" {
				tf, err := domain.ParseTimeframe(timeframe)
				if err != nil {
					return err
				}
				f.Timeframe = &tf
			}
			if status != "" {
				st, err := domain.ParseTaskStatus(status)
				if err != nil {
					return err
				}
				f.Status = &st
			}

			tasks, err := app.Tasks.List(context.Background(), app.UserID, f)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&timeframe, "timeframe", "", "Filter by timeframe")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending|in-progress|completed)")

	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTaskDetail(t))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var name, description string
	var estimate int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a task's name, description or estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("description") {
				t.Description = description
			}
			if cmd.Flags().Changed("estimate") {
				t.EstimatedMin = estimate
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Task name")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated time in minutes")

	return cmd
}

func newTaskStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start ID",
		Short: "Start tracking time on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			startedAt, err := app.Tasks.StartTracking(ctx, taskID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tracking started at %s\n", startedAt.Format("15:04:05"))
			return nil
		},
	}
}

func newTaskStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop ID",
		Short: "Stop the open tracking session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Tasks.StopTracking(ctx, taskID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Session closed: %s (total %s)\n",
				formatter.FormatSeconds(result.DurationSec),
				formatter.FormatSeconds(result.TotalTimeSpent))
			return nil
		},
	}
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	var feeling float64
	var note string

	cmd := &cobra.Command{
		Use:   "complete ID",
		Short: "Complete a task, optionally recording how it felt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var final *domain.EmotionSample
			if cmd.Flags().Changed("feeling") {
				if feeling < 1 || feeling > 10 {
					return fmt.Errorf("feeling must be between 1 and 10, got %v", feeling)
				}
				final = &domain.EmotionSample{Level: feeling, Note: note}
			} else if app.interactive() {
				final, err = runEmotionForm("How did it feel to finish?")
				if err != nil {
					return err
				}
			}

			t, err := app.Tasks.Complete(ctx, taskID, final)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s (tracked %s)\n",
				t.Name, formatter.FormatSeconds(t.TimeTracking.TotalTimeSpent))
			return nil
		},
	}

	cmd.Flags().Float64Var(&feeling, "feeling", 0, "Final emotion level, 1-10")
	cmd.Flags().StringVar(&note, "note", "", "Note attached to the final emotion")

	return cmd
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task and its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, taskID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", taskID[:8])
			return nil
		},
	}
}

func newTaskEmotionCmd(app *App) *cobra.Command {
	var phase string
	var level float64
	var note string

	cmd := &cobra.Command{
		Use:   "emotion ID",
		Short: "Record how a task feels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			p, err := domain.ParseEmotionPhase(phase)
			if err != nil {
				return err
			}

			sample := &domain.EmotionSample{Level: level, Note: note}
			if !cmd.Flags().Changed("level") {
				if !app.interactive() {
					return fmt.Errorf("--level is required")
				}
				sample, err = runEmotionForm(fmt.Sprintf("How do you feel (%s)?", p))
				if err != nil {
					return err
				}
				if sample == nil {
					return nil
				}
			}
			if sample.Level < 1 || sample.Level > 10 {
				return fmt.Errorf("level must be between 1 and 10, got %v", sample.Level)
			}

			if err := app.Tasks.RecordEmotion(ctx, taskID, p, *sample); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s emotion (%.0f/10)\n", p, sample.Level)
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", string(domain.PhaseDuring), "Phase (before|during|after)")
	cmd.Flags().Float64Var(&level, "level", 0, "Emotion level, 1-10")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")

	return cmd
}
