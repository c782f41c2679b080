// Package types provides type definitions for structured data used throughout the resume-press system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Document represents a structured résumé extracted from raw text.
// It is built once by the parser and treated as immutable afterwards.
type Document struct {
	Name           string            `json:"name"`
	Title          string            `json:"title,omitempty"`
	Company        string            `json:"company,omitempty"`
	Contacts       []ContactFact     `json:"contacts,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	SkillsRaw      string            `json:"skills_raw,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Education      []string          `json:"education,omitempty"`
}

// ContactFact represents one typed contact detail, e.g. {Phone, phone, "555-1234"}.
// Within a Document the (LabelKey, lowercased Value) pairs are unique and
// insertion order is the render order.
type ContactFact struct {
	Label    string `json:"label,omitempty"`
	LabelKey string `json:"label_key,omitempty"`
	Value    string `json:"value"`
}

// ExperienceEntry represents one blank-line-separated experience block.
// Header and bullet roles are mutually exclusive per line: a block whose first
// line carries a bullet glyph has an empty Header and that line leads Bullets.
type ExperienceEntry struct {
	Header   string   `json:"header"`
	Duration string   `json:"duration,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// IsEmpty reports whether the document carries no content at all.
func (d *Document) IsEmpty() bool {
	return d.Name == "" && d.Title == "" && len(d.Contacts) == 0 &&
		d.Summary == "" && len(d.Experience) == 0 && d.SkillsRaw == "" &&
		len(d.Certifications) == 0 && len(d.Education) == 0
}

// DisplayName returns the candidate name, falling back to a placeholder so the
// rendered page header is never blank.
func (d *Document) DisplayName() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return "Candidate Name"
}

// SkillLines returns the non-empty lines of SkillsRaw in order.
func (d *Document) SkillLines() []string {
	if d.SkillsRaw == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(d.SkillsRaw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
