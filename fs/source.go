package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skowalczyk/forage"
)

// Ensure DirSource implements forage.PageSource at compile time.
var _ forage.PageSource = (*DirSource)(nil)

// DirSource enumerates saved HTML pages in a flat directory.
type DirSource struct {
	dir    string
	filter string
}

// NewDirSource creates a DirSource over dir. If filter is non-empty, only
// filenames containing it are listed (e.g. "_viewtopic" for forum topic
// pages).
func NewDirSource(dir, filter string) *DirSource {
	return &DirSource{dir: dir, filter: filter}
}

// List returns matching filenames in lexical order.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.filter != "" && !strings.Contains(entry.Name(), s.filter) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the page's raw HTML, with invalid UTF-8 replaced.
func (s *DirSource) Read(ctx context.Context, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return "", forage.Errorf(forage.ENOTFOUND, "page not found: %s", name)
	}
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
