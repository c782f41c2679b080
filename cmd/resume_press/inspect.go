package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-press/internal/observability"
	"github.com/jonathan/resume-press/internal/parsing"
)

var inspectCommand = &cobra.Command{
	Use:   "inspect <resume.txt>",
	Short: "Parse a résumé text file and print the document model",
	Long:  "Runs only the parsing stage and prints the structured document, either as a readable summary or as JSON. Useful for checking how a résumé will be interpreted before rendering it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspectCmd,
}

var inspectJSON bool

func init() {
	inspectCommand.Flags().BoolVar(&inspectJSON, "json", false, "Print the document model as JSON")

	rootCmd.AddCommand(inspectCommand)
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	doc := parsing.ParseText(string(text))
	if inspectJSON {
		encoded, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(doc)
	return nil
}
