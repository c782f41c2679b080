package rendering

import (
	"path/filepath"

	"github.com/jonathan/resume-press/internal/layout"
	"github.com/jonathan/resume-press/internal/parsing"
	"github.com/jonathan/resume-press/internal/pdf"
	"github.com/jonathan/resume-press/internal/storage"
	"github.com/jonathan/resume-press/internal/styles"
	"github.com/jonathan/resume-press/internal/types"
)

// Options adjusts a single conversion run.
type Options struct {
	// Style is the typographic profile; the zero value means styles.Default().
	Style *styles.Style
	// Role is an extra headline role, typically derived from the source file
	// name, merged into the title line when it differs from the parsed title.
	Role string
}

// Result describes a finished conversion.
type Result struct {
	Path  string
	Pages int
	Bytes int
}

// Render parses résumé text, lays it out, and writes the encoded PDF to
// destPath. Parsing and encoding cannot fail; only an invalid style or the
// final write step can, and those are always surfaced to the caller.
func Render(text string, destPath string, opts Options) (Result, error) {
	return RenderDocument(parsing.ParseText(text), destPath, opts)
}

// RenderLines is Render for input that is already split into lines.
func RenderLines(lines []string, destPath string, opts Options) (Result, error) {
	return RenderDocument(parsing.Parse(lines), destPath, opts)
}

// RenderDocument renders an already-parsed document to destPath.
func RenderDocument(doc *types.Document, destPath string, opts Options) (Result, error) {
	style := styles.Default()
	if opts.Style != nil {
		style = *opts.Style
	}
	if err := style.Validate(); err != nil {
		return Result{}, &StyleError{Message: "cannot render with this profile", Cause: err}
	}

	instructions := layout.BuildInstructions(doc, opts.Role, style.Typography())
	data, pages := pdf.Render(instructions, style.Geometry())

	if err := storage.EnsureDir(filepath.Dir(destPath)); err != nil {
		return Result{}, &OutputError{Path: destPath, Message: "cannot create output directory", Cause: err}
	}
	if err := storage.WriteFileAtomic(destPath, data); err != nil {
		return Result{}, &OutputError{Path: destPath, Message: "cannot write output file", Cause: err}
	}
	return Result{Path: destPath, Pages: pages, Bytes: len(data)}, nil
}
