package pdfread

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredrikhm/artmatch/internal/core"
)

func TestSplitPagesOnFormFeed(t *testing.T) {
	pages := splitPages("100001 oak\nsecond line\f100002 pine\f")

	require.Len(t, pages, 3)
	assert.Equal(t, []string{"100001 oak", "second line"}, pages[0].Lines)
	assert.Equal(t, []string{"100002 pine"}, pages[1].Lines)
	assert.True(t, pages[2].Empty())
}

func TestSplitPagesWithoutFormFeed(t *testing.T) {
	pages := splitPages("just one page")

	require.Len(t, pages, 1)
	assert.Equal(t, []string{"just one page"}, pages[0].Lines)
}

func TestReadPagesMissingFile(t *testing.T) {
	r := NewDocconvReader()

	_, err := r.ReadPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

	var readErr *core.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Path, "missing.pdf")
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "notes.txt", "source.pdf", "UPPER.PDF"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

	paths, err := ListPDFs(dir, "source.pdf")

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "UPPER.PDF"),
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
	}, paths)
}

func TestListPDFsMissingDir(t *testing.T) {
	_, err := ListPDFs(filepath.Join(t.TempDir(), "nope"), "")

	assert.Error(t, err)
}
