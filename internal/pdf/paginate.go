package pdf

import (
	"fmt"

	"github.com/jonathan/resume-press/internal/layout"
)

// twoColumnGutter is the minimum horizontal gap between the bold left part and
// the right part of a two-column row before the right part drops to its own line.
const twoColumnGutter = 18

// paginator walks the draw instructions top to bottom, tracking a vertical
// cursor and accumulating one content stream per page. A new page starts
// whenever the remaining vertical space is insufficient; a page that received
// no commands is discarded instead of being emitted blank.
type paginator struct {
	geom    layout.Geometry
	streams [][]byte
	cmds    []string
	y       float64
}

// Paginate expands instructions into per-page content streams of text-show and
// line-stroke operators. At least one stream is always returned so that even
// an empty document yields a well-formed single-page file.
func Paginate(instructions []layout.Instruction, geom layout.Geometry) [][]byte {
	p := &paginator{geom: geom, y: geom.PageHeight - geom.MarginTop}
	for _, inst := range instructions {
		p.emit(inst)
	}
	p.flushPage()
	if len(p.streams) == 0 {
		p.streams = [][]byte{{}}
	}
	return p.streams
}

func (p *paginator) emit(inst layout.Instruction) {
	switch inst.Kind {
	case layout.KindSpacer:
		p.advance(inst.Height)
		return
	case layout.KindLine:
		p.textLine(SafeText(inst.Text), inst.Size, inst.Bold, inst.Align, inst.Indent)
	case layout.KindRule:
		p.rule()
	case layout.KindParagraph:
		p.paragraph(inst)
	case layout.KindTwoColumnRow:
		p.twoColumnRow(inst)
	case layout.KindKeyValueLine:
		p.keyValueLine(inst)
	case layout.KindKeyValueBlock:
		p.keyValueBlock(inst)
	}
	if inst.GapAfter > 0 {
		p.advance(inst.GapAfter)
	}
}

// flushPage closes the current page. Pages without commands are dropped so
// that a trailing page break never produces an empty page.
func (p *paginator) flushPage() {
	if len(p.cmds) > 0 {
		var stream []byte
		for i, cmd := range p.cmds {
			if i > 0 {
				stream = append(stream, '\n')
			}
			stream = append(stream, encodeWinAnsi(cmd)...)
		}
		p.streams = append(p.streams, stream)
	}
	p.cmds = nil
	p.y = p.geom.PageHeight - p.geom.MarginTop
}

// ensureSpace breaks the page when the needed height does not fit. When the
// current page is still empty the content is emitted anyway, below the bottom
// margin if necessary: a single oversized instruction must not trigger an
// endless chain of fresh pages.
func (p *paginator) ensureSpace(height float64) {
	if p.y-height < p.geom.MarginBottom {
		p.flushPage()
	}
}

// advance moves the cursor down by a gap, breaking the page first if the gap
// itself no longer fits.
func (p *paginator) advance(height float64) {
	p.ensureSpace(height)
	p.y -= height
}

func lineHeight(size float64) float64 {
	if h := size * 1.35; h > 12 {
		return h
	}
	return 12
}

// showText appends one positioned text-show group at the given baseline.
func (p *paginator) showText(x, y float64, size float64, bold bool, text string) {
	font := "/F1"
	if bold {
		font = "/F2"
	}
	p.cmds = append(p.cmds,
		"BT",
		fmt.Sprintf("%s %.2f Tf", font, size),
		fmt.Sprintf("1 0 0 1 %.2f %.2f Tm", x, y),
		fmt.Sprintf("(%s) Tj", escapeString(text)),
		"ET",
	)
}

// textLine draws one aligned line of safe text and advances the cursor.
func (p *paginator) textLine(text string, size float64, bold bool, align layout.Alignment, indent float64) {
	h := lineHeight(size)
	p.ensureSpace(h)
	var x float64
	switch align {
	case layout.AlignCenter:
		width := layout.TextWidth(text, size, bold)
		x = (p.geom.PageWidth - width) / 2
		if x < p.geom.MarginLeft {
			x = p.geom.MarginLeft
		}
	case layout.AlignRight:
		width := layout.TextWidth(text, size, bold)
		x = p.geom.PageWidth - p.geom.MarginRight - width
		if min := p.geom.MarginLeft + indent; x < min {
			x = min
		}
	default:
		x = p.geom.MarginLeft + indent
	}
	p.showText(x, p.y, size, bold, text)
	p.y -= h
}

// segment is one weighted run of text sharing a visual line with others.
type segment struct {
	text string
	bold bool
}

// segmentsLine draws multiple segments on the same baseline, e.g. a bold label
// followed by its regular value.
func (p *paginator) segmentsLine(segments []segment, size, indent float64) {
	h := lineHeight(size)
	p.ensureSpace(h)
	x := p.geom.MarginLeft + indent
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		p.showText(x, p.y, size, seg.bold, seg.text)
		x += layout.TextWidth(seg.text, size, seg.bold)
	}
	p.y -= h
}

// rule strokes a thin horizontal line across the content width.
func (p *paginator) rule() {
	const h = 6.0
	p.ensureSpace(h)
	ruleY := p.y - 1
	p.cmds = append(p.cmds,
		"q",
		"0.75 w",
		fmt.Sprintf("%.2f %.2f m", p.geom.MarginLeft, ruleY),
		fmt.Sprintf("%.2f %.2f l", p.geom.PageWidth-p.geom.MarginRight, ruleY),
		"S",
		"Q",
	)
	p.y -= h
}

func (p *paginator) paragraph(inst layout.Instruction) {
	text := SafeText(inst.Text)
	bulletReserve := 0.0
	if inst.Bullet {
		bulletReserve = 10
	}
	maxChars := layout.MaxChars(p.geom.ContentWidth()-inst.Indent-bulletReserve, inst.Size)
	wrapped := layout.WrapText(text, maxChars)

	if inst.Bullet {
		const bulletPrefix = "• "
		prefixWidth := layout.TextWidth(bulletPrefix, inst.Size, false)
		p.segmentsLine([]segment{{bulletPrefix, false}, {wrapped[0], inst.Bold}}, inst.Size, inst.Indent)
		for _, line := range wrapped[1:] {
			p.textLine(line, inst.Size, inst.Bold, layout.AlignLeft, inst.Indent+prefixWidth)
		}
		return
	}
	for _, line := range wrapped {
		p.textLine(line, inst.Size, inst.Bold, layout.AlignLeft, inst.Indent)
	}
}

// twoColumnRow puts the bold left part and the regular right part on one
// visual line when both fit with the gutter; otherwise the right part drops to
// an indented line of its own, slightly smaller.
func (p *paginator) twoColumnRow(inst layout.Instruction) {
	left := SafeText(inst.Left)
	right := SafeText(inst.Right)
	size := inst.Size
	h := lineHeight(size)
	p.ensureSpace(h)

	switch {
	case left != "" && right != "":
		leftWidth := layout.TextWidth(left, size, true)
		rightWidth := layout.TextWidth(right, size, false)
		if leftWidth+rightWidth+twoColumnGutter <= p.geom.ContentWidth() {
			p.textLine(left, size, true, layout.AlignLeft, 0)
			p.y += h // share the baseline with the right part
			p.textLine(right, size, false, layout.AlignRight, 0)
		} else {
			p.textLine(left, size, true, layout.AlignLeft, 0)
			dropSize := size - 0.2
			if dropSize < 9.5 {
				dropSize = 9.5
			}
			p.textLine(right, dropSize, false, layout.AlignLeft, 12)
		}
	case left != "":
		p.textLine(left, size, true, layout.AlignLeft, 0)
	case right != "":
		p.textLine(right, size, false, layout.AlignRight, 0)
	}
}

// keyValueLine renders a bold label directly followed by the regular value,
// wrapping continuation lines at an indent equal to the label width.
func (p *paginator) keyValueLine(inst layout.Instruction) {
	label := SafeText(inst.Label)
	value := SafeText(inst.Value)
	labelWidth := layout.TextWidth(label, inst.Size, true)
	valueIndent := inst.Indent + labelWidth

	if value == "" {
		p.segmentsLine([]segment{{label, true}}, inst.Size, inst.Indent)
		return
	}
	maxChars := layout.MaxChars(p.geom.ContentWidth()-valueIndent, inst.Size)
	wrapped := layout.WrapText(value, maxChars)
	p.segmentsLine([]segment{{label, true}, {wrapped[0], false}}, inst.Size, inst.Indent)
	for _, line := range wrapped[1:] {
		p.textLine(line, inst.Size, false, layout.AlignLeft, valueIndent)
	}
}

// keyValueBlock renders the bold label on its own line with the wrapped value
// lines beneath it at a fixed indent.
func (p *paginator) keyValueBlock(inst layout.Instruction) {
	label := SafeText(inst.Label)
	value := SafeText(inst.Value)
	valueIndent := inst.ValueIndent
	if valueIndent == 0 {
		valueIndent = 14
	}
	p.textLine(label, inst.Size, true, layout.AlignLeft, inst.Indent)
	if value == "" {
		return
	}
	maxChars := layout.MaxChars(p.geom.ContentWidth()-valueIndent, inst.Size)
	for _, line := range layout.WrapText(value, maxChars) {
		p.textLine(line, inst.Size, false, layout.AlignLeft, valueIndent)
	}
}
