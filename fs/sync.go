package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// MoveMatching moves files whose names contain pattern from srcDir to
// destDir, creating destDir if needed, and returns the number of files
// moved. Files already present in destDir are overwritten; directories are
// skipped. This implements the staging-to-archive sync between the crawler
// output and the extraction input.
func MoveMatching(srcDir, destDir, pattern string) (int, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, err
	}

	moved := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), pattern) {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		dest := filepath.Join(destDir, entry.Name())
		if err := os.Rename(src, dest); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}
