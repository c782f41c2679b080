// Package main provides the resume-press command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_press",
	Short: "Convert plain-text résumés into formatted PDF documents",
	Long:  "resume-press parses loosely structured résumé text into a document model and renders it as a minimal, dependency-free PDF: manual layout, pagination, and byte-exact file encoding.",
}

// databaseURLFromEnv returns the conversion-history database URL, if any.
func databaseURLFromEnv() string {
	return os.Getenv("DATABASE_URL")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
