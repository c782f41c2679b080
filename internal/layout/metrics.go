package layout

import (
	"strings"
	"unicode/utf8"
)

// Width factors approximating built-in Helvetica metrics. The target face is a
// fixed, known sans-serif, so a per-character factor is an acceptable stand-in
// for real glyph metrics.
const (
	widthFactorRegular = 0.52
	widthFactorBold    = 0.56
)

// minWrapChars bounds how narrow greedy wrapping is allowed to get; pathological
// indents otherwise produce one-character columns.
const minWrapChars = 20

// Geometry describes the page box and margins, in points.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// ContentWidth returns the horizontal space available to draw instructions.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// TextWidth estimates the rendered width of text at the given size.
func TextWidth(text string, size float64, bold bool) float64 {
	factor := widthFactorRegular
	if bold {
		factor = widthFactorBold
	}
	return float64(utf8.RuneCountInString(text)) * size * factor
}

// MaxChars converts an available width into a wrap budget in characters for
// regular-weight text, never below minWrapChars.
func MaxChars(available, size float64) int {
	max := int(available / (size * widthFactorRegular))
	if max < minWrapChars {
		return minWrapChars
	}
	return max
}

// WrapText greedily word-wraps text to at most maxChars characters per line.
// The next word is appended while "current line + space + word" stays within
// budget; wrapping never alters character content beyond the line breaks.
func WrapText(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, 1)
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if utf8.RuneCountInString(candidate) <= maxChars {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
