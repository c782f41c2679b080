package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-press/internal/layout"
)

func TestEncode_HeaderAndTrailer(t *testing.T) {
	out := Encode([][]byte{[]byte("BT ET")}, a4())

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-1.4\n")))
	assert.Greater(t, out[10], byte(0x7f), "binary comment keeps transfer tools honest")
	assert.True(t, bytes.HasSuffix(out, []byte("%%EOF\n")))
	assert.Contains(t, string(out), "trailer")
	assert.Contains(t, string(out), "/Root 1 0 R")
}

func TestEncode_ObjectCountTracksPages(t *testing.T) {
	// catalog, pages, two fonts, then a page and content object per stream
	one := Encode([][]byte{{}}, a4())
	assert.Contains(t, string(one), "/Size 7")

	three := Encode([][]byte{{}, {}, {}}, a4())
	assert.Contains(t, string(three), "/Size 11")
	assert.Contains(t, string(three), "/Count 3")
}

func TestEncode_FontsAndMediaBox(t *testing.T) {
	out := string(Encode([][]byte{{}}, a4()))

	assert.Contains(t, out, "/BaseFont /Helvetica ")
	assert.Contains(t, out, "/BaseFont /Helvetica-Bold ")
	assert.Equal(t, 2, strings.Count(out, "/Encoding /WinAnsiEncoding"))
	assert.Contains(t, out, "/MediaBox [0 0 595 842]")
}

func TestEncode_ContentStreamLength(t *testing.T) {
	stream := []byte("BT /F1 10.00 Tf ET")
	out := string(Encode([][]byte{stream}, a4()))

	assert.Contains(t, out, fmt.Sprintf("/Length %d >>\nstream\n%s\nendstream", len(stream), stream))
}

// parseXref reads the offsets recorded in the cross-reference table.
func parseXref(t *testing.T, out []byte) (offsets []int, xrefOffset int) {
	t.Helper()

	text := string(out)
	idx := strings.Index(text, "xref\n")
	require.GreaterOrEqual(t, idx, 0)
	xrefOffset = idx

	lines := strings.Split(text[idx:], "\n")
	require.Greater(t, len(lines), 2)
	var count int
	_, err := fmt.Sscanf(lines[1], "0 %d", &count)
	require.NoError(t, err)
	require.Equal(t, "0000000000 65535 f ", lines[2])

	for i := 1; i < count; i++ {
		entry := lines[2+i]
		require.True(t, strings.HasSuffix(entry, " 00000 n "), "entry %d: %q", i, entry)
		offset, err := strconv.Atoi(entry[:10])
		require.NoError(t, err)
		offsets = append(offsets, offset)
	}
	return offsets, xrefOffset
}

func TestEncode_XrefOffsetsMatchObjectPositions(t *testing.T) {
	out := Encode([][]byte{[]byte("BT ET"), []byte("q Q")}, a4())
	offsets, xrefOffset := parseXref(t, out)
	require.Len(t, offsets, 8)

	for i, offset := range offsets {
		token := fmt.Sprintf("%d 0 obj\n", i+1)
		require.Less(t, offset+len(token), len(out))
		assert.Equal(t, token, string(out[offset:offset+len(token)]), "object %d", i+1)
	}

	assert.Contains(t, string(out), fmt.Sprintf("startxref\n%d\n", xrefOffset))
}

func TestRender_EmptyDocumentIsSinglePage(t *testing.T) {
	out, pages := Render(nil, a4())
	assert.Equal(t, 1, pages)
	assert.Contains(t, string(out), "/Count 1")
}

func TestRender_PageCountMatchesStreams(t *testing.T) {
	geom := layout.Geometry{
		PageWidth: 595, PageHeight: 100,
		MarginLeft: 20, MarginRight: 20, MarginTop: 20, MarginBottom: 20,
	}
	var instructions []layout.Instruction
	for i := 0; i < 12; i++ {
		instructions = append(instructions, layout.Instruction{Kind: layout.KindLine, Text: "x", Size: 10})
	}

	out, pages := Render(instructions, geom)
	assert.Equal(t, 3, pages)
	assert.Contains(t, string(out), "/Count 3")
	assert.Equal(t, 12, strings.Count(string(out), "(x) Tj"))
}
