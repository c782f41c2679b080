package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanBulletText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No bullet", "Did X", "Did X"},
		{"Asterisk", "* Did X", "Did X"},
		{"Hyphen", "- Did X", "Did X"},
		{"Unicode bullet", "• Did X", "Did X"},
		{"Stacked glyphs", "*- Did X", "Did X"},
		{"Glyphs with spaces between", "* - • Did X", "Did X"},
		{"Only glyphs", "*-•", ""},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Interior glyph untouched", "Did X - then Y", "Did X - then Y"},
		{"Trailing whitespace trimmed", "  - Did X  ", "Did X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanBulletText(tt.input))
		})
	}
}

func TestCleanBulletText_ExhaustiveStripping(t *testing.T) {
	// Any prefix built from the three glyphs must be removed entirely.
	prefixes := []string{"*", "-", "•", "**", "--", "••", "*-", "-•", "•*", "*•-", "- * •", "*** "}
	for _, prefix := range prefixes {
		cleaned := CleanBulletText(prefix + "payload")
		assert.Equal(t, "payload", cleaned, "prefix %q should be stripped", prefix)
	}
}

func TestHasBulletPrefix(t *testing.T) {
	assert.True(t, hasBulletPrefix("* x"))
	assert.True(t, hasBulletPrefix("- x"))
	assert.True(t, hasBulletPrefix("• x"))
	assert.False(t, hasBulletPrefix("x"))
	assert.False(t, hasBulletPrefix(""))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \t b\n\nc  "))
	assert.Equal(t, "", CollapseWhitespace("   \t\n"))
	assert.Equal(t, "one", CollapseWhitespace("one"))
}

func TestSplitLines_UnixAndWindows(t *testing.T) {
	lines := SplitLines("a\r\nb\nc\rd")
	assert.Equal(t, []string{"a", "b", "c", "d"}, lines)
}

func TestSplitLines_InvalidUTF8Replaced(t *testing.T) {
	lines := SplitLines("ok\n\xff\xfe")
	assert.Len(t, lines, 2)
	assert.Equal(t, "ok", lines[0])
	assert.NotContains(t, lines[1], "\xff")
}
