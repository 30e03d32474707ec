package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/ramavi/balans/internal/cli"
	"github.com/ramavi/balans/internal/db"
	"github.com/ramavi/balans/internal/intelligence"
	"github.com/ramavi/balans/internal/llm"
	"github.com/ramavi/balans/internal/repository"
	"github.com/ramavi/balans/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.balans/balans.db
	dbPath := os.Getenv("BALANS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".balans", "balans.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Single local profile, overridable for shared machines.
	userID := os.Getenv("BALANS_USER")
	if userID == "" {
		userID = "local"
	}

	app := &cli.App{
		Tasks:    service.NewTaskService(taskRepo, userRepo, uow),
		Analysis: service.NewAnalysisService(taskRepo),
		Users:    service.NewUserService(userRepo),
		UserID:   userID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// AI services only when the LLM is enabled; commands fall back to
	// deterministic output otherwise.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)

		app.Suggestions = intelligence.NewSuggestionService(llmClient, observer)
		app.Insights = intelligence.NewInsightService(llmClient, observer)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
