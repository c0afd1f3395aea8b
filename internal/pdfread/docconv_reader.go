package pdfread

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"github.com/fredrikhm/artmatch/internal/core"
)

var _ core.DocumentReader = (*DocconvReader)(nil)

// DocconvReader extracts page text through docconv. For PDFs the conversion
// runs pdftotext, which separates pages with form feeds; formats converted
// without page structure come back as a single page.
type DocconvReader struct{}

func NewDocconvReader() *DocconvReader {
	return &DocconvReader{}
}

// ReadPages opens the file at path, extracts its text, and splits it into
// pages and lines. The file handle is released before returning, whether
// conversion succeeded or not.
func (r *DocconvReader) ReadPages(ctx context.Context, path string) ([]core.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.ReadError{Path: path, Err: err}
	}
	defer f.Close()

	res, err := docconv.Convert(f, docconv.MimeTypeByExtension(path), false)
	if err != nil {
		return nil, &core.ReadError{Path: path, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return splitPages(res.Body), nil
}

func splitPages(body string) []core.Page {
	var pages []core.Page
	for _, page := range strings.Split(body, "\f") {
		pages = append(pages, core.Page{Lines: splitLines(page)})
	}
	return pages
}

func splitLines(body string) []string {
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

// ListPDFs returns the paths of the .pdf files directly inside dir, in
// directory-listing order, excluding the named source document and any file
// without a .pdf extension.
func ListPDFs(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") || name == exclude {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
