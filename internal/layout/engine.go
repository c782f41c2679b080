package layout

import (
	"strings"

	"github.com/jonathan/resume-press/internal/parsing"
	"github.com/jonathan/resume-press/internal/types"
)

// Typography carries the font sizes the engine assigns to each element class.
type Typography struct {
	NameSize    float64
	HeadingSize float64
	BodySize    float64
	MetaSize    float64
}

// Vertical rhythm between document regions, in points.
const (
	sectionSpacing = 18
	headerSpacing  = 28
	contactSpacing = 6
	entrySpacing   = 4
)

// contactLabels maps known contact label keys to their display labels. Facts
// outside this set render as plain paragraphs.
var contactLabels = map[string]string{
	"phone":       "Phone",
	"email":       "Email",
	"address":     "Address",
	"nationality": "Nationality",
}

// engine accumulates draw instructions for one document.
type engine struct {
	typo  Typography
	items []Instruction
}

// BuildInstructions converts a parsed document into the ordered draw
// instruction sequence consumed by the paginator. An extra headline role (for
// example derived from the source filename) is merged into the title line when
// it differs from the document title.
func BuildInstructions(doc *types.Document, role string, typo Typography) []Instruction {
	e := &engine{typo: typo}

	e.line(doc.DisplayName(), typo.NameSize, true, AlignCenter, 3)
	if headline := headlineText(doc.Title, role); headline != "" {
		e.line(headline, typo.HeadingSize, true, AlignCenter, 2)
	}
	e.spacer(headerSpacing)

	e.contactItems(doc.Contacts)

	if summary := parsing.CleanBulletText(doc.Summary); summary != "" {
		e.sectionHeading("PROFESSIONAL SUMMARY")
		e.paragraph(summary, typo.BodySize, 0, false, 2)
	}

	if len(doc.Experience) > 0 {
		e.sectionHeading("PROFESSIONAL EXPERIENCE")
		for _, entry := range doc.Experience {
			e.experienceEntry(entry)
		}
	}

	if skillLines := doc.SkillLines(); len(skillLines) > 0 {
		e.sectionHeading("SKILLS")
		for _, line := range skillLines {
			e.skillLine(line)
		}
	}

	if certs := cleanedEntries(doc.Certifications); len(certs) > 0 {
		e.sectionHeading("CERTIFICATIONS")
		for _, cert := range certs {
			e.paragraph(cert, typo.BodySize, 12, true, 0.8)
		}
	}

	if education := cleanedEntries(doc.Education); len(education) > 0 {
		e.sectionHeading("EDUCATION")
		for _, edu := range education {
			e.paragraph(edu, typo.BodySize, 0, false, 0.8)
		}
	}

	return e.items
}

// headlineText joins the document title and the external role, dropping the
// role when it repeats the title.
func headlineText(title, role string) string {
	title = strings.TrimSpace(title)
	role = strings.TrimSpace(role)
	if role != "" && title != "" && strings.EqualFold(role, title) {
		role = ""
	}
	switch {
	case title != "" && role != "":
		return title + " | " + role
	case title != "":
		return title
	default:
		return role
	}
}

func (e *engine) contactItems(facts []types.ContactFact) {
	if len(facts) == 0 {
		return
	}
	emitted := false
	for _, fact := range facts {
		value := strings.TrimSpace(fact.Value)
		if value == "" {
			continue
		}
		if label, known := contactLabels[fact.LabelKey]; known {
			e.keyValueLine(label+": ", value, e.typo.BodySize, 1)
		} else {
			e.paragraph(value, e.typo.BodySize, 0, false, 1)
		}
		emitted = true
	}
	if emitted {
		e.spacer(contactSpacing)
	}
}

func (e *engine) experienceEntry(entry types.ExperienceEntry) {
	header := parsing.CleanBulletText(entry.Header)
	duration := parsing.CleanBulletText(entry.Duration)
	if header != "" || duration != "" {
		e.items = append(e.items, Instruction{
			Kind:     KindTwoColumnRow,
			Left:     header,
			Right:    duration,
			Size:     e.typo.MetaSize,
			GapAfter: 2,
		})
	}
	for _, bullet := range entry.Bullets {
		if text := parsing.CleanBulletText(bullet); text != "" {
			e.paragraph(text, e.typo.BodySize, 12, true, 0.8)
		}
	}
	e.spacer(entrySpacing)
}

// skillLine renders colon-bearing skill lines as bold label plus value and
// plain lines as bulleted paragraphs.
func (e *engine) skillLine(line string) {
	if label, value, ok := strings.Cut(line, ":"); ok {
		e.keyValueLine(strings.TrimSpace(label)+": ", strings.TrimSpace(value), e.typo.BodySize, 1.2)
		return
	}
	e.paragraph(line, e.typo.BodySize, 12, true, 0.8)
}

// sectionHeading emits the whitespace-heading-rule group that opens a section.
// A pending spacer is raised to the section gap rather than stacked.
func (e *engine) sectionHeading(title string) {
	if n := len(e.items); n > 0 {
		if last := &e.items[n-1]; last.Kind == KindSpacer {
			if last.Height < sectionSpacing {
				last.Height = sectionSpacing
			}
		} else {
			e.spacer(sectionSpacing)
		}
	}
	e.line(strings.ToUpper(title), e.typo.HeadingSize, true, AlignLeft, 2)
	e.items = append(e.items, Instruction{Kind: KindRule, GapAfter: 6})
}

func (e *engine) line(text string, size float64, bold bool, align Alignment, gapAfter float64) {
	e.items = append(e.items, Instruction{
		Kind:     KindLine,
		Text:     text,
		Size:     size,
		Bold:     bold,
		Align:    align,
		GapAfter: gapAfter,
	})
}

func (e *engine) paragraph(text string, size, indent float64, bullet bool, gapAfter float64) {
	e.items = append(e.items, Instruction{
		Kind:     KindParagraph,
		Text:     text,
		Size:     size,
		Indent:   indent,
		Bullet:   bullet,
		GapAfter: gapAfter,
	})
}

func (e *engine) keyValueLine(label, value string, size, gapAfter float64) {
	e.items = append(e.items, Instruction{
		Kind:     KindKeyValueLine,
		Label:    label,
		Value:    value,
		Size:     size,
		GapAfter: gapAfter,
	})
}

func (e *engine) spacer(height float64) {
	e.items = append(e.items, Instruction{Kind: KindSpacer, Height: height})
}

func cleanedEntries(entries []string) []string {
	var cleaned []string
	for _, entry := range entries {
		if text := parsing.CleanBulletText(entry); text != "" {
			cleaned = append(cleaned, text)
		}
	}
	return cleaned
}
