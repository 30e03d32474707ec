package cli

import (
	"github.com/ramavi/balans/internal/intelligence"
	"github.com/ramavi/balans/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Analysis service.AnalysisService
	Users    service.UserService

	// Optional AI services; nil degrades to built-in fallbacks.
	Suggestions intelligence.SuggestionService
	Insights    intelligence.InsightService

	// UserID identifies the active local profile.
	UserID string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "balans" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "balans",
		Short: "Life-balance task tracker",
	}

	root.AddCommand(
		newUserCmd(app),
		newTaskCmd(app),
		newAnalysisCmd(app),
		newBalanceCmd(app),
		newSuggestCmd(app),
	)

	return root
}
