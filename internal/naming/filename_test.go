package naming

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-press/internal/types"
)

func TestExtractFileMetadata(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected FileMetadata
	}{
		{
			"Four parts",
			"jane-doe-software_engineer-acme.txt",
			FileMetadata{First: "jane", Last: "doe", Role: "software engineer", Company: "acme"},
		},
		{
			"Five parts join middle as role",
			"jane-doe-senior-engineer-acme.txt",
			FileMetadata{First: "jane", Last: "doe", Role: "senior engineer", Company: "acme"},
		},
		{
			"Three parts have no company",
			"jane-doe-engineer.txt",
			FileMetadata{First: "jane", Last: "doe", Role: "engineer"},
		},
		{
			"Two parts",
			"jane-doe.txt",
			FileMetadata{First: "jane", Last: "doe"},
		},
		{
			"Single part",
			"resume.txt",
			FileMetadata{First: "resume"},
		},
		{
			"Empty parts skipped",
			"jane--doe.txt",
			FileMetadata{First: "jane", Last: "doe"},
		},
		{
			"Directory ignored",
			filepath.Join("inbox", "jane-doe.txt"),
			FileMetadata{First: "jane", Last: "doe"},
		},
		{
			"Empty stem",
			".txt",
			FileMetadata{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractFileMetadata(tt.path))
		})
	}
}

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		hyphenate bool
		expected  string
	}{
		{"Plain text", "Jane Doe", false, "Jane Doe"},
		{"Hyphenated", "Jane Doe", true, "Jane-Doe"},
		{"Reserved characters", `a<b>c:d"e/f\g|h?i*j`, false, "a b c d e f g h i j"},
		{"Underscore becomes space", "software_engineer", false, "software engineer"},
		{"Whitespace collapsed", "  Jane   Doe  ", true, "Jane-Doe"},
		{"Hyphen runs collapsed", "Jane - - Doe", true, "Jane-Doe"},
		{"Edge separators trimmed", "-.Jane.-", true, "Jane"},
		{"Empty", "   ", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeComponent(tt.input, tt.hyphenate))
		})
	}
}

func TestDeriveOutputStem_DocumentPreferred(t *testing.T) {
	doc := &types.Document{Name: "Jane Doe", Title: "Engineer", Company: "Acme Corp"}
	meta := FileMetadata{First: "other", Last: "person", Role: "clerk", Company: "globex"}

	assert.Equal(t, "Jane-Doe-Engineer-Acme-Corp", DeriveOutputStem(doc, meta, "fallback"))
}

func TestDeriveOutputStem_MetadataFillsGaps(t *testing.T) {
	doc := &types.Document{Name: "Jane Doe"}
	meta := FileMetadata{First: "jane", Last: "doe", Role: "engineer", Company: "acme"}

	assert.Equal(t, "Jane-Doe-engineer-acme", DeriveOutputStem(doc, meta, "fallback"))
}

func TestDeriveOutputStem_MetadataOnly(t *testing.T) {
	meta := FileMetadata{First: "jane", Last: "doe", Role: "engineer"}
	assert.Equal(t, "jane-doe-engineer", DeriveOutputStem(&types.Document{}, meta, "fallback"))
}

func TestDeriveOutputStem_FallbackStem(t *testing.T) {
	assert.Equal(t, "my-resume", DeriveOutputStem(&types.Document{}, FileMetadata{}, "my resume"))
}

func TestDeriveOutputStem_UnsanitizableFallbackKept(t *testing.T) {
	assert.Equal(t, "---", DeriveOutputStem(&types.Document{}, FileMetadata{}, "---"))
}

func TestResolveDestination(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{"Empty output is bare filename", "", "Jane-Doe.pdf"},
		{"Directory path", "out", filepath.Join("out", "Jane-Doe.pdf")},
		{"Nested directory path", filepath.Join("out", "pdfs"), filepath.Join("out", "pdfs", "Jane-Doe.pdf")},
		{"File path places sibling", filepath.Join("out", "anything.pdf"), filepath.Join("out", "Jane-Doe.pdf")},
		{"File in working directory", "anything.pdf", "Jane-Doe.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDestination(tt.output, "Jane-Doe"))
		})
	}
}
