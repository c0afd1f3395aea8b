package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fredrikhm/artmatch/internal/core"
)

var _ core.ReportStore = (*LocalStore)(nil)

// LocalStore keeps reports as plain files under a base directory. This is
// the default backend and matches the tool's original on-disk behavior.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the report under its base name and returns the full path.
func (s *LocalStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}

func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, filepath.Base(name)))
}
