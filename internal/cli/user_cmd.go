package cli

import (
	"context"
	"fmt"

	"github.com/ramavi/balans/internal/cli/formatter"
	"github.com/ramavi/balans/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local profile",
	}

	cmd.AddCommand(
		newUserRegisterCmd(app),
		newUserShowCmd(app),
	)

	return cmd
}

func newUserRegisterCmd(app *App) *cobra.Command {
	var email, name, language string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.User{
				ID:          app.UserID,
				Email:       email,
				DisplayName: name,
				Language:    language,
			}
			if err := app.Users.Register(context.Background(), u); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered profile %s\n", u.DisplayName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&language, "language", "", "Preferred language code (default en)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUserShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local profile and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.GetByID(context.Background(), app.UserID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatUser(u))
			return nil
		},
	}
}
