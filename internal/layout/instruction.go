// Package layout converts the parsed document model into an ordered sequence
// of renderer-agnostic draw instructions and owns the approximate text metrics
// used to wrap and place them.
package layout

// Kind discriminates the draw instruction variants.
type Kind int

const (
	// KindLine is a single unwrapped line of text.
	KindLine Kind = iota
	// KindParagraph is a word-wrapped block, optionally bulleted.
	KindParagraph
	// KindTwoColumnRow is a bold left part and a regular right part that share
	// one visual line when both fit, e.g. an experience header and duration.
	KindTwoColumnRow
	// KindKeyValueLine is a bold label immediately followed by a regular value
	// on the same line, continuation lines indented past the label.
	KindKeyValueLine
	// KindKeyValueBlock is a bold label line followed by wrapped value lines
	// at a fixed indent.
	KindKeyValueBlock
	// KindRule is a thin horizontal rule across the content width.
	KindRule
	// KindSpacer is vertical whitespace.
	KindSpacer
)

// Alignment selects horizontal placement of a line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Instruction is one draw instruction emitted by the engine and consumed
// exactly once by the paginator. Instances are never mutated after creation.
type Instruction struct {
	Kind Kind

	Text  string // KindLine, KindParagraph
	Label string // KindKeyValueLine, KindKeyValueBlock
	Value string // KindKeyValueLine, KindKeyValueBlock
	Left  string // KindTwoColumnRow
	Right string // KindTwoColumnRow

	Size        float64
	Bold        bool
	Align       Alignment
	Indent      float64
	Bullet      bool    // KindParagraph
	ValueIndent float64 // KindKeyValueBlock
	Height      float64 // KindSpacer

	GapAfter float64
}
