package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-press/internal/history"
	"github.com/jonathan/resume-press/internal/observability"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions recorded in the history database",
	Long: `Prints the most recent conversion runs, newest first.

Requires a PostgreSQL URL via --database-url or the DATABASE_URL environment variable.`,
	RunE: runHistoryCmd,
}

var (
	historyLimit       int
	historyDatabaseURL string
)

func init() {
	historyCommand.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of conversions to show")
	historyCommand.Flags().StringVar(&historyDatabaseURL, "database-url", "", "PostgreSQL URL for conversion history (defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(historyCommand)
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = databaseURLFromEnv()
	}
	if databaseURL == "" {
		return fmt.Errorf("--database-url or DATABASE_URL is required")
	}
	if historyLimit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	store, err := history.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	conversions, err := store.ListRecent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(conversions)
	return nil
}
