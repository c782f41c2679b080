// Package pdf lays draw instructions out on paginated pages and serializes the
// result into a minimal PDF file: uncompressed content streams, two built-in
// Helvetica faces, an object table, a cross-reference table and a trailer.
package pdf

import "strings"

// typographicReplacer substitutes characters that commonly appear in résumé
// text but have no direct WinAnsi slot, or whose ASCII form is preferred.
var typographicReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	" ", " ", // no-break space
)

// winAnsiExtra maps the non-Latin-1 code points that WinAnsi squeezes into the
// 0x80..0x9F byte range. Everything else representable comes straight from
// Latin-1.
var winAnsiExtra = map[rune]byte{
	'€': 0x80, // €
	'‚': 0x82,
	'ƒ': 0x83,
	'„': 0x84,
	'…': 0x85, // …
	'†': 0x86,
	'‡': 0x87,
	'ˆ': 0x88,
	'‰': 0x89,
	'Š': 0x8a,
	'‹': 0x8b,
	'Œ': 0x8c,
	'Ž': 0x8e,
	'‘': 0x91,
	'’': 0x92,
	'“': 0x93,
	'”': 0x94,
	'•': 0x95, // •
	'–': 0x96,
	'—': 0x97,
	'˜': 0x98,
	'™': 0x99, // ™
	'š': 0x9a,
	'›': 0x9b,
	'œ': 0x9c,
	'ž': 0x9e,
	'Ÿ': 0x9f,
}

// SafeText rewrites text so that every character survives WinAnsi encoding:
// typographic punctuation is substituted first and any remaining unencodable
// character is replaced with '?'. Replacement is always possible, so text
// handling never fails.
func SafeText(text string) string {
	text = typographicReplacer.Replace(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if encodable(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

func encodable(r rune) bool {
	if r < 0x80 || (r >= 0xa0 && r <= 0xff) {
		return true
	}
	_, ok := winAnsiExtra[r]
	return ok
}

// escapeString escapes the characters with syntactic meaning inside a PDF
// literal string.
func escapeString(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "(", `\(`)
	text = strings.ReplaceAll(text, ")", `\)`)
	return text
}

// encodeWinAnsi encodes already-safe text as single-byte WinAnsi. Anything
// that still cannot be represented becomes '?' rather than an error.
func encodeWinAnsi(text string) []byte {
	out := make([]byte, 0, len(text))
	for _, r := range text {
		switch {
		case r < 0x80 || (r >= 0xa0 && r <= 0xff):
			out = append(out, byte(r))
		default:
			if b, ok := winAnsiExtra[r]; ok {
				out = append(out, b)
			} else {
				out = append(out, '?')
			}
		}
	}
	return out
}
