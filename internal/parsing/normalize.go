// Package parsing turns loosely structured résumé text into the structured
// document model. The parser is permissive by design: input is arbitrary user
// text, so malformed or missing sections degrade to empty fields rather than
// producing errors.
package parsing

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanBulletText strips leading bullet glyphs (*, -, •) from text, repeatedly,
// since source résumés sometimes stack several glyphs on one line.
func CleanBulletText(text string) string {
	cleaned := strings.TrimSpace(text)
	for {
		trimmed := strings.TrimLeft(cleaned, "*-•")
		if trimmed == cleaned {
			return cleaned
		}
		cleaned = strings.TrimSpace(trimmed)
	}
}

// hasBulletPrefix reports whether a trimmed line starts with a bullet glyph.
func hasBulletPrefix(line string) bool {
	return strings.HasPrefix(line, "*") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•")
}

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims the result.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// SplitLines breaks raw résumé text into lines. Invalid UTF-8 sequences are
// replaced rather than rejected, matching the permissive input policy of the
// parser. Windows line endings are tolerated.
func SplitLines(text string) []string {
	text = strings.ToValidUTF8(text, "�")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
