package pdf

import (
	"fmt"

	"github.com/jonathan/resume-press/internal/layout"
)

// fileHeader is the fixed PDF header: the version line plus a high-bit comment
// so transfer tools treat the file as binary.
var fileHeader = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

// objectTable is an append-only table of serialized PDF objects addressed by
// 1-based id. Ids are never reused or reordered; each object is written to the
// output exactly once, in id order.
type objectTable struct {
	objects [][]byte // index 0 is the free-list sentinel and stays empty
}

func newObjectTable() *objectTable {
	return &objectTable{objects: make([][]byte, 1)}
}

// alloc reserves the next object id.
func (t *objectTable) alloc() int {
	t.objects = append(t.objects, nil)
	return len(t.objects) - 1
}

func (t *objectTable) set(id int, body []byte) {
	t.objects[id] = body
}

func (t *objectTable) setString(id int, body string) {
	t.objects[id] = encodeWinAnsi(body)
}

// Render paginates the draw instructions and encodes the result as a complete
// PDF file. It is a pure function of its inputs and cannot fail; the page
// count is reported alongside the bytes.
func Render(instructions []layout.Instruction, geom layout.Geometry) ([]byte, int) {
	streams := Paginate(instructions, geom)
	return Encode(streams, geom), len(streams)
}

// Encode assembles per-page content streams into the final byte buffer:
// header, every object in increasing id order with its byte offset recorded as
// it is appended, the cross-reference table, and the trailer. Offsets are
// computed incrementally so the recorded offset of object N always equals the
// exact position of its "N 0 obj" token.
func Encode(streams [][]byte, geom layout.Geometry) []byte {
	table := newObjectTable()

	catalogID := table.alloc()
	pagesID := table.alloc()
	fontRegularID := table.alloc()
	fontBoldID := table.alloc()

	pageIDs := make([]int, len(streams))
	contentIDs := make([]int, len(streams))
	for i := range streams {
		pageIDs[i] = table.alloc()
		contentIDs[i] = table.alloc()
	}

	table.setString(fontRegularID,
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	table.setString(fontBoldID,
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>")

	for i, stream := range streams {
		table.setString(pageIDs[i], fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.0f %.0f] "+
				"/Resources << /Font << /F1 %d 0 R /F2 %d 0 R >> >> /Contents %d 0 R >>",
			pagesID, geom.PageWidth, geom.PageHeight, fontRegularID, fontBoldID, contentIDs[i]))

		content := []byte(fmt.Sprintf("<< /Length %d >>\nstream\n", len(stream)))
		content = append(content, stream...)
		content = append(content, []byte("\nendstream")...)
		table.set(contentIDs[i], content)
	}

	kids := ""
	for i, id := range pageIDs {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", id)
	}
	table.setString(pagesID, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pageIDs)))
	table.setString(catalogID, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID))

	out := make([]byte, 0, 4096)
	out = append(out, fileHeader...)

	offsets := make([]int, len(table.objects))
	for id := 1; id < len(table.objects); id++ {
		offsets[id] = len(out)
		out = append(out, []byte(fmt.Sprintf("%d 0 obj\n", id))...)
		out = append(out, table.objects[id]...)
		out = append(out, []byte("\nendobj\n")...)
	}

	xrefOffset := len(out)
	out = append(out, []byte(fmt.Sprintf("xref\n0 %d\n", len(table.objects)))...)
	out = append(out, []byte("0000000000 65535 f \n")...)
	for id := 1; id < len(table.objects); id++ {
		out = append(out, []byte(fmt.Sprintf("%010d 00000 n \n", offsets[id]))...)
	}
	out = append(out, []byte(fmt.Sprintf(
		"trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(table.objects), catalogID, xrefOffset))...)

	return out
}
