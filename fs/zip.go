package fs

import (
	"archive/zip"
	"context"
	"io"
	"sort"
	"strings"

	"github.com/skowalczyk/forage"
)

// imageExtensions are the archive entry extensions treated as direct image
// files.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg"}

// Ensure ZipSource implements forage.ImageEntrySource at compile time.
var _ forage.ImageEntrySource = (*ZipSource)(nil)

// ZipSource enumerates saved HTML pages and direct image entries inside a
// zip archive (the layout the wiki scrape is delivered in).
type ZipSource struct {
	rc *zip.ReadCloser
}

// OpenZipSource opens the archive at path.
func OpenZipSource(path string) (*ZipSource, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &ZipSource{rc: rc}, nil
}

// Close releases the underlying archive handle.
func (s *ZipSource) Close() error {
	return s.rc.Close()
}

// List returns the names of every .html entry in lexical order.
func (s *ZipSource) List(ctx context.Context) ([]string, error) {
	var names []string
	for _, f := range s.rc.File {
		if strings.HasSuffix(f.Name, ".html") {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ImageEntries returns the paths of direct image files in lexical order.
func (s *ZipSource) ImageEntries(ctx context.Context) ([]string, error) {
	var names []string
	for _, f := range s.rc.File {
		lower := strings.ToLower(f.Name)
		for _, ext := range imageExtensions {
			if strings.HasSuffix(lower, ext) {
				names = append(names, f.Name)
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Read returns an entry's raw HTML, with invalid UTF-8 replaced.
func (s *ZipSource) Read(ctx context.Context, name string) (string, error) {
	for _, f := range s.rc.File {
		if f.Name != name {
			continue
		}
		r, err := f.Open()
		if err != nil {
			return "", err
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		return strings.ToValidUTF8(string(data), "�"), nil
	}
	return "", forage.Errorf(forage.ENOTFOUND, "entry not found: %s", name)
}
