package core

import (
	"context"
	"io"
)

// ReportStore persists rendered reports. It abstracts the backend so the
// local filesystem can be swapped for S3 without touching the service layer.
type ReportStore interface {
	// Save writes the report bytes under name and returns a location string
	// (a path for local storage, a URL for S3).
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)

	// Open returns a reader for a previously saved report.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
