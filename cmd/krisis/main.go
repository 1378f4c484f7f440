package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/krisis/internal/cli"
	"github.com/alexanderramin/krisis/internal/db"
	"github.com/alexanderramin/krisis/internal/repository"
	"github.com/alexanderramin/krisis/internal/service"
	"github.com/alexanderramin/krisis/internal/triage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.krisis/krisis.db
	dbPath := os.Getenv("KRISIS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".krisis", "krisis.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// The classifier trains once here and is read-only afterwards.
	engine := triage.NewEngine()
	batchRepo := repository.NewSQLiteBatchRepo(database)

	app := &cli.App{
		Predict:  service.NewPredictionService(engine, batchRepo),
		Chat:     service.NewChatService(batchRepo),
		Datasets: service.NewDatasetService(batchRepo),
	}

	// Detect interactive terminal for the chat shell and confirmations.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
