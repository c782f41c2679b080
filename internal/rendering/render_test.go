package rendering

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-press/internal/styles"
	"github.com/jonathan/resume-press/internal/types"
)

const sampleResume = `Jane Doe
Phone: 555-1234

Software Engineer
Professional Summary
Built things.
Experience
Acme Corp
2020-2022
- Did X
- Did Y
`

func TestRender_WritesValidPDF(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")

	result, err := Render(sampleResume, dest, Options{})
	require.NoError(t, err)
	assert.Equal(t, dest, result.Path)
	assert.Equal(t, 1, result.Pages)
	assert.Greater(t, result.Bytes, 0)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Len(t, data, result.Bytes)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4\n")))
	assert.True(t, bytes.HasSuffix(data, []byte("%%EOF\n")))
	assert.Contains(t, string(data), "(Jane Doe) Tj")
	assert.Contains(t, string(data), "(PROFESSIONAL EXPERIENCE) Tj")
}

func TestRender_EmptyInputStillProducesOnePage(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "empty.pdf")

	result, err := Render("", dest, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pages)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(Candidate Name) Tj")
}

func TestRender_CreatesMissingOutputDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "deeper", "out.pdf")

	_, err := Render(sampleResume, dest, Options{})
	require.NoError(t, err)
	_, err = os.Stat(dest)
	assert.NoError(t, err)
}

func TestRenderLines(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")

	result, err := RenderLines([]string{"Jane Doe", "Phone: 555"}, dest, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pages)
}

func TestRenderDocument_RoleMergedIntoHeadline(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")
	doc := &types.Document{Name: "Jane", Title: "Engineer"}

	_, err := RenderDocument(doc, dest, Options{Role: "Backend"})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(Engineer | Backend) Tj")
}

func TestRenderDocument_CustomStyle(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.pdf")
	style := styles.Default()
	style.PageWidth = 612
	style.PageHeight = 792

	_, err := RenderDocument(&types.Document{Name: "Jane"}, dest, Options{Style: &style})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/MediaBox [0 0 612 792]")
}

func TestRenderDocument_InvalidStyle(t *testing.T) {
	style := styles.Default()
	style.BodySize = -1

	_, err := RenderDocument(&types.Document{Name: "Jane"}, filepath.Join(t.TempDir(), "out.pdf"), Options{Style: &style})
	require.Error(t, err)

	var styleErr *StyleError
	require.True(t, errors.As(err, &styleErr))
	assert.ErrorContains(t, err, "style error")
	assert.Error(t, styleErr.Unwrap())
}

func TestRenderDocument_UnwritableDestination(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent "directory" is a regular file, so both EnsureDir and the
	// write must fail.
	dest := filepath.Join(blocker, "out.pdf")
	_, err := RenderDocument(&types.Document{Name: "Jane"}, dest, Options{})
	require.Error(t, err)

	var outErr *OutputError
	require.True(t, errors.As(err, &outErr))
	assert.Equal(t, dest, outErr.Path)
}

func TestStyleErrorMessage(t *testing.T) {
	err := &StyleError{Message: "bad profile", Cause: errors.New("boom")}
	assert.Equal(t, "style error: bad profile: boom", err.Error())
	assert.Equal(t, "style error: bad profile", (&StyleError{Message: "bad profile"}).Error())
}

func TestOutputErrorMessage(t *testing.T) {
	err := &OutputError{Path: "out.pdf", Message: "cannot write", Cause: errors.New("disk full")}
	assert.Equal(t, "output error at out.pdf: cannot write: disk full", err.Error())
	assert.Equal(t, errors.New("disk full").Error(), err.Unwrap().Error())
}
