package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/skowalczyk/forage"
)

// Ensure PageStore implements forage.PageStore at compile time.
var _ forage.PageStore = (*PageStore)(nil)

// PageStore saves fetched pages into a flat directory using the
// PageFileName convention.
type PageStore struct {
	dir string
}

// NewPageStore creates a PageStore writing to dir.
func NewPageStore(dir string) *PageStore {
	return &PageStore{dir: dir}
}

// SavePage writes the page body and returns the filename used.
func (s *PageStore) SavePage(ctx context.Context, url string, body []byte) (string, error) {
	name, err := PageFileName(url)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), body, 0644); err != nil {
		return "", err
	}
	return name, nil
}

// Has reports whether the named page file already exists.
func (s *PageStore) Has(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}
