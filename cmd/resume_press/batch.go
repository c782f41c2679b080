package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-press/internal/config"
	"github.com/jonathan/resume-press/internal/pipeline"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Convert every résumé text file in a directory",
	Long: `Converts all .txt files in --input-dir with a bounded pool of parallel workers.
Each conversion is independent; failures are reported per file without aborting the batch.

When DATABASE_URL is set (flag, config, or environment), each conversion is recorded
in the conversion history table.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath  string
	batchInputDir    string
	batchOutputDir   string
	batchStylePath   string
	batchWorkers     int
	batchDatabaseURL string
	batchVerbose     bool
)

func init() {
	batchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCommand.Flags().StringVarP(&batchInputDir, "input-dir", "i", "", "Directory containing résumé .txt files")
	batchCommand.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Directory for generated PDFs (defaults to the input directory)")
	batchCommand.Flags().StringVarP(&batchStylePath, "style", "s", "", "Path to a style profile JSON file")
	batchCommand.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Parallel conversions (default 4)")
	batchCommand.Flags().StringVar(&batchDatabaseURL, "database-url", "", "PostgreSQL URL for conversion history (optional, defaults to DATABASE_URL env var)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print per-file progress")

	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		InputDir:    batchInputDir,
		OutputDir:   batchOutputDir,
		Style:       batchStylePath,
		Workers:     batchWorkers,
		DatabaseURL: batchDatabaseURL,
		Verbose:     batchVerbose,
	}
	if batchConfigPath != "" {
		fileCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = databaseURLFromEnv()
	}
	if cfg.InputDir == "" {
		return fmt.Errorf("--input-dir is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	style, err := loadStyle(cfg.Style)
	if err != nil {
		return err
	}

	sources, err := pipeline.CollectSources(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no .txt files found in %s", cfg.InputDir)
	}

	opts := pipeline.RunOptions{
		Sources:     sources,
		OutputDir:   cfg.OutputDir,
		Style:       style,
		Workers:     cfg.Workers,
		DatabaseURL: cfg.DatabaseURL,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", event.Source, event.Message)
		}
	}

	results, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	failures := 0
	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Fprintf(cmd.OutOrStdout(), "FAILED %s: %v\n", result.Source, result.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages)\n", result.OutputPath, result.Pages)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d conversions failed", failures, len(results))
	}
	return nil
}
