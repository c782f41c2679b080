// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-press/internal/history"
	"github.com/jonathan/resume-press/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padLine truncates and pads a line to the interior box width. Widths are
// counted in runes so multi-byte text never breaks mid-rune or skews the
// right border.
func padLine(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		return string(runes[:boxWidth-7]) + "..."
	}
	return string(runes) + strings.Repeat(" ", boxWidth-4-len(runes))
}

// PrintDocument outputs a human-readable summary of the parsed résumé.
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:    %s\n", doc.Name))
	sb.WriteString(fmt.Sprintf("Title:   %s\n", doc.Title))
	if doc.Company != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n", doc.Company))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Contacts (%d):\n", len(doc.Contacts)))
	for i, fact := range doc.Contacts {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Contacts)-maxItemsToShow))
			break
		}
		if fact.Label != "" {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", fact.Label, fact.Value))
		} else {
			sb.WriteString(fmt.Sprintf("  %s\n", fact.Value))
		}
	}

	if doc.Summary != "" {
		sb.WriteString(fmt.Sprintf("\nSummary: %d chars\n", len(doc.Summary)))
	}
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(doc.Experience)))
	for i, entry := range doc.Experience {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
			break
		}
		header := entry.Header
		if header == "" {
			header = "(no header)"
		}
		sb.WriteString(fmt.Sprintf("  %s (%d bullets)\n", header, len(entry.Bullets)))
	}
	sb.WriteString(fmt.Sprintf("Skill lines: %d\n", len(doc.SkillLines())))
	sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(doc.Certifications)))
	sb.WriteString(fmt.Sprintf("Education entries: %d", len(doc.Education)))

	p.printBox("Parsed Résumé", sb.String())
}

// PrintHistory outputs recorded conversion runs, newest first.
func (p *Printer) PrintHistory(conversions []history.Conversion) {
	if len(conversions) == 0 {
		p.printBox("Conversion History", "No conversions recorded")
		return
	}

	var sb strings.Builder
	for i, conv := range conversions {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s  %s\n", conv.CreatedAt.Format("2006-01-02 15:04"), conv.Source))
		line := fmt.Sprintf("  %s", conv.Status)
		if conv.OutputPath != "" {
			line += fmt.Sprintf("  %s (%d pages, %d bytes)", conv.OutputPath, conv.Pages, conv.SizeBytes)
		}
		sb.WriteString(line)
	}
	p.printBox("Conversion History", sb.String())
}

// PrintConversion outputs a summary of one finished conversion.
func (p *Printer) PrintConversion(source, output string, pages, sizeBytes int) {
	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", source))
	}
	sb.WriteString(fmt.Sprintf("Output: %s\n", output))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", pages))
	sb.WriteString(fmt.Sprintf("Size:   %d bytes", sizeBytes))
	p.printBox("Conversion Complete", sb.String())
}
