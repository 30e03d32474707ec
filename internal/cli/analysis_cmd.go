package cli

import (
	"context"
	"fmt"

	"github.com/ramavi/balans/internal/cli/formatter"
	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/intelligence"
	"github.com/ramavi/balans/internal/service"
	"github.com/spf13/cobra"
)

func newAnalysisCmd(app *App) *cobra.Command {
	var window string

	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Per-category time analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := domain.ParseWindow(window)
			if err != nil {
				return err
			}

			analysis, err := app.Analysis.CategoryAnalysis(context.Background(), service.AnalysisRequest{
				UserID: app.UserID,
				Window: w,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatAnalysis(analysis, w))
			return nil
		},
	}

	cmd.Flags().StringVar(&window, "window", "all", "Time window (day|week|month|all)")

	return cmd
}

func newBalanceCmd(app *App) *cobra.Command {
	var window string
	var withInsight bool

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "How tracked time splits across life areas",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w, err := domain.ParseWindow(window)
			if err != nil {
				return err
			}

			req := service.AnalysisRequest{UserID: app.UserID, Window: w}
			balance, err := app.Analysis.Balance(ctx, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatBalance(balance, w))

			if !withInsight {
				return nil
			}

			analysis, err := app.Analysis.CategoryAnalysis(ctx, req)
			if err != nil {
				return err
			}
			user, err := app.Users.GetByID(ctx, app.UserID)
			if err != nil {
				user = nil
			}

			insights := app.Insights
			if insights == nil {
				insights = intelligence.NewInsightService(nil, nil)
			}
			result, err := insights.BalanceInsight(ctx, intelligence.InsightRequest{
				User:     user,
				Analysis: analysis,
				Balance:  balance,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.RenderBox("Insight", result.Text))
			return nil
		},
	}

	cmd.Flags().StringVar(&window, "window", "all", "Time window (day|week|month|all)")
	cmd.Flags().BoolVar(&withInsight, "insight", false, "Append an assessment of the balance")

	return cmd
}
