package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-press/internal/config"
	"github.com/jonathan/resume-press/internal/naming"
	"github.com/jonathan/resume-press/internal/observability"
	"github.com/jonathan/resume-press/internal/parsing"
	"github.com/jonathan/resume-press/internal/rendering"
	"github.com/jonathan/resume-press/internal/styles"
)

var convertCommand = &cobra.Command{
	Use:   "convert <resume.txt>",
	Short: "Convert a single résumé text file into a PDF",
	Long: `Parses the résumé text, lays it out on A4 pages (or a custom style profile),
and writes a PDF named <name>-<role>-<company>.pdf derived from the parsed content.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvertCmd,
}

var (
	convertConfigPath string
	convertOutput     string
	convertStylePath  string
	convertVerbose    bool
)

func init() {
	convertCommand.Flags().StringVar(&convertConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	convertCommand.Flags().StringVarP(&convertOutput, "output", "o", "", "Output directory or file path (defaults to the source directory)")
	convertCommand.Flags().StringVarP(&convertStylePath, "style", "s", "", "Path to a style profile JSON file")
	convertCommand.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Print detailed conversion information")

	rootCmd.AddCommand(convertCommand)
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg := config.Config{
		OutputDir: convertOutput,
		Style:     convertStylePath,
		Verbose:   convertVerbose,
	}
	if convertConfigPath != "" {
		fileCfg, err := config.LoadConfig(convertConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	style, err := loadStyle(cfg.Style)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	doc := parsing.ParseText(string(text))
	meta := naming.ExtractFileMetadata(source)
	stem := naming.DeriveOutputStem(doc, meta, sourceStem(source))

	output := cfg.OutputDir
	if output == "" {
		output = filepath.Dir(source)
	}
	destPath := naming.ResolveDestination(output, stem)

	result, err := rendering.RenderDocument(doc, destPath, rendering.Options{Style: style, Role: meta.Role})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintDocument(doc)
		printer.PrintConversion(source, result.Path, result.Pages, result.Bytes)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages, %d bytes)\n", result.Path, result.Pages, result.Bytes)
	}
	return nil
}

// loadStyle returns nil for the default profile so callers can pass it
// straight into rendering.Options.
func loadStyle(path string) (*styles.Style, error) {
	if path == "" {
		return nil, nil
	}
	style, err := styles.Load(path)
	if err != nil {
		return nil, err
	}
	return &style, nil
}

func sourceStem(source string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if stem == "" {
		return "resume"
	}
	return stem
}
