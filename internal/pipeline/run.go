// Package pipeline provides the high-level orchestration for converting one
// or many résumé text files into PDFs.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-press/internal/history"
	"github.com/jonathan/resume-press/internal/naming"
	"github.com/jonathan/resume-press/internal/parsing"
	"github.com/jonathan/resume-press/internal/rendering"
	"github.com/jonathan/resume-press/internal/styles"
)

// defaultWorkers bounds batch parallelism when the caller does not choose one.
const defaultWorkers = 4

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Source  string `json:"source"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the conversion pipeline
type RunOptions struct {
	Sources     []string // Paths to résumé text files
	OutputDir   string   // Destination directory; defaults to each source's directory
	Style       *styles.Style
	Workers     int
	DatabaseURL string
	OnProgress  ProgressCallback
}

// Result describes the outcome of converting one source file.
type Result struct {
	RunID      uuid.UUID
	Source     string
	OutputPath string
	Pages      int
	SizeBytes  int
	Err        error
}

// Run converts every source file, at most Workers at a time. Conversions are
// independent: each run is a pure function of its input text plus destination,
// so failures are collected per source rather than aborting the batch. The
// returned results follow the order of opts.Sources.
func Run(ctx context.Context, opts RunOptions) ([]Result, error) {
	if len(opts.Sources) == 0 {
		return nil, fmt.Errorf("no input files to convert")
	}

	var store *history.Store
	if opts.DatabaseURL != "" {
		var err error
		store, err = history.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open conversion history: %w", err)
		}
		defer store.Close()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	// Each goroutine writes its own index, so the slice needs no locking.
	results := make([]Result, len(opts.Sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, source := range opts.Sources {
		i, source := i, source
		g.Go(func() error {
			results[i] = convertOne(ctx, source, opts, store)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// convertOne runs the full conversion for a single source file and records it
// in the history store when one is configured.
func convertOne(ctx context.Context, source string, opts RunOptions, store *history.Store) Result {
	result := Result{RunID: uuid.New(), Source: source}
	progress := func(message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Source: source, Message: message, RunID: result.RunID.String()})
		}
	}

	if store != nil {
		if id, err := store.CreateConversion(ctx, source); err == nil {
			result.RunID = id
		}
	}

	progress("reading input")
	text, err := os.ReadFile(source)
	if err != nil {
		result.Err = fmt.Errorf("failed to read %s: %w", source, err)
		recordOutcome(ctx, store, result)
		return result
	}

	progress("parsing résumé")
	doc := parsing.ParseText(string(text))
	meta := naming.ExtractFileMetadata(source)
	stem := naming.DeriveOutputStem(doc, meta, sourceStem(source))

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}
	destPath := filepath.Join(outputDir, stem+".pdf")

	progress("rendering PDF")
	rendered, err := rendering.RenderDocument(doc, destPath, rendering.Options{
		Style: opts.Style,
		Role:  meta.Role,
	})
	if err != nil {
		result.Err = err
		recordOutcome(ctx, store, result)
		return result
	}

	result.OutputPath = rendered.Path
	result.Pages = rendered.Pages
	result.SizeBytes = rendered.Bytes
	progress("done")
	recordOutcome(ctx, store, result)
	return result
}

// recordOutcome persists the final state of a conversion; history failures are
// reported through the result only if the conversion itself succeeded.
func recordOutcome(ctx context.Context, store *history.Store, result Result) {
	if store == nil {
		return
	}
	status := history.StatusCompleted
	if result.Err != nil {
		status = history.StatusFailed
	}
	// Best effort: a missed history row must not fail a finished conversion.
	_ = store.CompleteConversion(ctx, result.RunID, result.OutputPath, result.Pages, result.SizeBytes, status)
}

func sourceStem(source string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if stem == "" {
		return "resume"
	}
	return stem
}

// CollectSources lists the .txt files directly inside dir, sorted by name.
func CollectSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", dir, err)
	}
	var sources []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		sources = append(sources, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(sources)
	return sources, nil
}
