package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-press/internal/types"
)

// section identifies the résumé section currently being collected.
type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionExperience
	sectionSkills
	sectionCertifications
	sectionEducation
)

var (
	durationRe   = regexp.MustCompile(`\d{4}`)
	skillSplitRe = regexp.MustCompile(`[-,\n;]+`)
	camelJoinRe  = regexp.MustCompile(`([a-z])([A-Z])`)
)

// sectionFor maps a line to the section it introduces. The key is the
// lowercased line with trailing colons removed.
func sectionFor(line string) (section, bool) {
	key := strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ":")
	switch key {
	case "professional summary", "summary":
		return sectionSummary, true
	case "professional experience", "experience":
		return sectionExperience, true
	case "technical skills", "skills":
		return sectionSkills, true
	case "education", "qualification":
		return sectionEducation, true
	}
	if strings.HasPrefix(key, "certificat") {
		return sectionCertifications, true
	}
	return sectionNone, false
}

// ParseText parses raw résumé text. Invalid UTF-8 is replaced, never rejected.
func ParseText(text string) *types.Document {
	return Parse(SplitLines(text))
}

// Parse runs the section state machine over raw résumé lines and returns the
// structured document. It never fails: unrecognized or missing content simply
// leaves the corresponding fields empty.
func Parse(lines []string) *types.Document {
	doc := &types.Document{}
	i := 0

	// Name: first non-blank line. A run of single-character lines directly
	// after it is a vertically spelled name and is collapsed into one.
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) {
		nameChars := []string{strings.TrimSpace(lines[i])}
		j := i + 1
		for j < len(lines) && utf8.RuneCountInString(strings.TrimSpace(lines[j])) == 1 {
			nameChars = append(nameChars, strings.TrimSpace(lines[j]))
			j++
		}
		if len(nameChars) > 1 {
			doc.Name = strings.Join(nameChars, "")
			i = j
		} else {
			doc.Name = nameChars[0]
			i++
		}
	}

	// Contact block: every non-blank line until the first blank one.
	var contactLines []string
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(strings.ToLower(line), "company name:") {
			if _, value, ok := strings.Cut(line, ":"); ok {
				doc.Company = strings.TrimSpace(value)
			}
		}
		contactLines = append(contactLines, line)
		i++
	}
	contactLines = separateNationality(contactLines)
	doc.Contacts = BuildContactFacts(contactLines)

	// Standalone title line between the contact block and the first section.
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) {
		candidate := strings.TrimSpace(lines[i])
		if _, isSection := sectionFor(candidate); !isSection {
			doc.Title = candidate
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
		}
	}

	// Section scan. Lines before the first section header accumulate into the
	// sectionNone buffer and are discarded on flush.
	active := sectionNone
	var buffer []string
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if next, isSection := sectionFor(line); isSection {
			flushSection(doc, active, buffer)
			active, buffer = next, nil
			continue
		}
		buffer = append(buffer, line)
	}
	flushSection(doc, active, buffer)

	return doc
}

// separateNationality inserts one synthetic blank line after each
// "Nationality:" entry unless the next entry is already blank, guaranteeing
// visual separation in output regardless of source formatting.
func separateNationality(contactLines []string) []string {
	if len(contactLines) == 0 {
		return contactLines
	}
	out := make([]string, 0, len(contactLines)+1)
	for idx, line := range contactLines {
		out = append(out, line)
		if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "nationality:") {
			continue
		}
		nextBlank := idx+1 < len(contactLines) && strings.TrimSpace(contactLines[idx+1]) == ""
		if !nextBlank {
			out = append(out, "")
		}
	}
	return out
}

// flushSection stores the buffered lines into the document field owned by the
// given section. A sectionNone buffer has no home and is dropped.
func flushSection(doc *types.Document, sec section, buffer []string) {
	text := strings.TrimSpace(strings.Join(buffer, "\n"))
	if text == "" {
		return
	}
	switch sec {
	case sectionSummary:
		doc.Summary = text
	case sectionExperience:
		doc.Experience = append(doc.Experience, parseExperienceBlocks(text)...)
	case sectionSkills:
		doc.SkillsRaw, doc.Skills = parseSkills(text)
	case sectionCertifications:
		doc.Certifications = cleanedLines(text)
	case sectionEducation:
		doc.Education = cleanedLines(text)
	}
}

// parseExperienceBlocks splits the experience buffer on blank-line-separated
// blocks. Within a block the first line is the header, the second line is the
// duration if and only if it contains a four-digit run, and everything else
// becomes bullets with their leading glyphs stripped.
func parseExperienceBlocks(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, block := range strings.Split(text, "\n\n") {
		var blockLines []string
		for _, line := range strings.Split(block, "\n") {
			if strings.TrimSpace(line) != "" {
				blockLines = append(blockLines, strings.TrimSpace(line))
			}
		}
		if len(blockLines) == 0 {
			continue
		}

		header := blockLines[0]
		duration := ""
		rest := blockLines[1:]
		if len(blockLines) > 1 && durationRe.MatchString(blockLines[1]) {
			duration = blockLines[1]
			rest = blockLines[2:]
		}

		var bullets []string
		for _, line := range rest {
			if bullet := CleanBulletText(line); bullet != "" {
				bullets = append(bullets, bullet)
			}
		}

		// A header carrying a bullet glyph is a bullet, not a header.
		if hasBulletPrefix(header) {
			if lead := CleanBulletText(header); lead != "" {
				bullets = append([]string{lead}, bullets...)
			}
			header = ""
		}

		entries = append(entries, types.ExperienceEntry{
			Header:   header,
			Duration: duration,
			Bullets:  bullets,
		})
	}
	return entries
}

// parseSkills keeps the bullet-stripped skill lines verbatim as the raw form
// and derives the legacy flattened list by splitting on commas, semicolons,
// dashes and newlines. The lowercase/uppercase split repairs concatenated
// tokens like "PythonSQL"; it is best-effort and will also split legitimate
// camel-case tokens.
func parseSkills(text string) (string, []string) {
	var cleanedRaw []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cleanedRaw = append(cleanedRaw, CleanBulletText(line))
	}
	raw := strings.Join(cleanedRaw, "\n")

	var flattened []string
	for _, token := range skillSplitRe.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		flattened = append(flattened, camelJoinRe.ReplaceAllString(token, "$1 $2"))
	}
	return raw, flattened
}

// cleanedLines returns one entry per non-blank line with bullet glyphs removed.
func cleanedLines(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		if entry := CleanBulletText(line); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
