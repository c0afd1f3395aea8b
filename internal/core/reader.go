package core

import (
	"context"
	"fmt"
)

// Page holds the extractable plain text of one document page, split into
// lines in extraction order. Extraction is best effort: a page with no
// recoverable text has an empty Lines slice and is not an error.
type Page struct {
	Lines []string
}

// Empty reports whether the page yielded no text at all.
func (p Page) Empty() bool {
	return len(p.Lines) == 0
}

// DocumentReader is the document-reading collaborator. Implementations open
// the file at path, extract its pages, and release the underlying handle
// before returning, whether extraction succeeded or not.
type DocumentReader interface {
	ReadPages(ctx context.Context, path string) ([]Page, error)
}

// ReadError indicates that a file could not be parsed as a document of the
// expected format. It aborts the scan of that document; there is no retry.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read document %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
