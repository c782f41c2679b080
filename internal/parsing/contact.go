package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-press/internal/types"
)

var (
	mailtoRe = regexp.MustCompile(`(?i)mailto:\s*`)
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+`)
)

// BuildContactFacts classifies raw contact lines into typed facts. Lines with
// a colon become label/value facts; everything else becomes an untyped fact.
// Facts are de-duplicated on (label key, lowercased value) preserving
// first-seen order, which is also the render order.
func BuildContactFacts(contactLines []string) []types.ContactFact {
	var facts []types.ContactFact
	seen := make(map[[2]string]bool)

	for _, raw := range contactLines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(strings.ToLower(line), "company name:") {
			continue
		}
		line = CleanBulletText(line)

		var fact types.ContactFact
		if label, value, ok := strings.Cut(line, ":"); ok {
			label = titleCase(strings.TrimSpace(label))
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			labelKey := strings.ToLower(label)
			switch labelKey {
			case "email":
				value = normalizeEmailValue(value)
			case "address":
				value = normalizeAddressValue(value)
			}
			fact = types.ContactFact{Label: label, LabelKey: labelKey, Value: value}
		} else {
			fact = types.ContactFact{Value: line}
		}

		key := [2]string{fact.LabelKey, strings.ToLower(fact.Value)}
		if fact.Value == "" || seen[key] {
			continue
		}
		seen[key] = true
		facts = append(facts, fact)
	}
	return facts
}

// normalizeEmailValue extracts the email tokens from a free-text value,
// dropping mailto: prefixes and angle/square brackets, de-duplicating
// case-insensitively in first-seen order, and joining survivors with " / ".
// If no token matches, the cleaned value is kept as-is.
func normalizeEmailValue(value string) string {
	value = mailtoRe.ReplaceAllString(value, "")
	value = strings.NewReplacer("<", "", ">", "", "[", "", "]", "").Replace(value)
	found := emailRe.FindAllString(value, -1)
	if len(found) == 0 {
		return strings.TrimSpace(value)
	}
	var unique []string
	seen := make(map[string]bool)
	for _, email := range found {
		lower := strings.ToLower(email)
		if !seen[lower] {
			seen[lower] = true
			unique = append(unique, email)
		}
	}
	return strings.Join(unique, " / ")
}

// normalizeAddressValue trims trailing commas and spaces and appends the
// country when the address does not already end with it.
func normalizeAddressValue(value string) string {
	value = strings.TrimRight(value, ", ")
	if value == "" || strings.HasSuffix(strings.ToLower(value), "india") {
		return value
	}
	if strings.HasSuffix(value, ".") {
		return value + " India"
	}
	return value + ", India"
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, word boundaries being any non-letter rune.
func titleCase(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	prevLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			sb.WriteRune(r)
			prevLetter = false
		}
	}
	return sb.String()
}
