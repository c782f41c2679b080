// Package naming derives output file names from parsed résumé content and
// from metadata encoded in the source file name.
package naming

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-press/internal/parsing"
	"github.com/jonathan/resume-press/internal/types"
)

// FileMetadata holds the pieces encoded in a hyphen-separated source file
// stem, e.g. "jane-doe-software_engineer-acme.txt".
type FileMetadata struct {
	First   string
	Last    string
	Role    string
	Company string
}

// ExtractFileMetadata splits a source path's stem on hyphens: first name,
// last name, then role, with the final part read as the company when four or
// more parts are present. Underscores inside parts read as spaces.
func ExtractFileMetadata(path string) FileMetadata {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var parts []string
	for _, part := range strings.Split(stem, "-") {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}

	var meta FileMetadata
	if len(parts) == 0 {
		return meta
	}
	meta.First = cleanToken(parts[0])
	if len(parts) >= 2 {
		meta.Last = cleanToken(parts[1])
	}
	switch {
	case len(parts) >= 4:
		meta.Role = joinTokens(parts[2 : len(parts)-1])
		meta.Company = cleanToken(parts[len(parts)-1])
	case len(parts) == 3:
		meta.Role = cleanToken(parts[2])
	}
	return meta
}

func cleanToken(token string) string {
	return parsing.CollapseWhitespace(strings.ReplaceAll(token, "_", " "))
}

func joinTokens(tokens []string) string {
	var cleaned []string
	for _, token := range tokens {
		if c := cleanToken(token); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return strings.Join(cleaned, " ")
}

// SanitizeComponent makes a filename component filesystem-safe: reserved
// characters and underscores become spaces, whitespace runs collapse to one
// separator, hyphen runs collapse, and leading/trailing separators are
// trimmed. With hyphenate set, spaces become hyphens.
func SanitizeComponent(text string, hyphenate bool) string {
	text = parsing.CollapseWhitespace(text)
	if text == "" {
		return ""
	}
	var sb strings.Builder
	for _, r := range text {
		if strings.ContainsRune(`<>:"/\|?*_`, r) {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(r)
		}
	}
	separator := " "
	if hyphenate {
		separator = "-"
	}
	cleaned := strings.Join(strings.Fields(sb.String()), separator)
	for strings.Contains(cleaned, "--") {
		cleaned = strings.ReplaceAll(cleaned, "--", "-")
	}
	return strings.Trim(cleaned, "-. ")
}

// DeriveOutputStem produces the mandatory name-role-company output stem,
// preferring parsed résumé content and falling back to source file metadata,
// then to the sanitized fallback stem.
func DeriveOutputStem(doc *types.Document, meta FileMetadata, fallback string) string {
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(meta.First) + " " + strings.TrimSpace(meta.Last))
	}
	role := strings.TrimSpace(doc.Title)
	if role == "" {
		role = strings.TrimSpace(meta.Role)
	}
	company := strings.TrimSpace(doc.Company)
	if company == "" {
		company = strings.TrimSpace(meta.Company)
	}

	var components []string
	for _, value := range []string{name, role, company} {
		if safe := SanitizeComponent(value, true); safe != "" {
			components = append(components, safe)
		}
	}
	if len(components) > 0 {
		return strings.Join(components, "-")
	}
	if safe := SanitizeComponent(fallback, true); safe != "" {
		return safe
	}
	return fallback
}

// ResolveDestination maps an output path argument to the final .pdf path for
// the given stem: a directory (existing, or any path without an extension)
// receives "<stem>.pdf" inside it, while a path with an extension places
// "<stem>.pdf" next to it.
func ResolveDestination(outputPath, stem string) string {
	filename := stem + ".pdf"
	if outputPath == "" {
		return filename
	}
	if filepath.Ext(outputPath) != "" {
		return filepath.Join(filepath.Dir(outputPath), filename)
	}
	return filepath.Join(outputPath, filename)
}
