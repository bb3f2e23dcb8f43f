package forage

import "context"

// PageSource enumerates and reads the saved HTML pages of one archive.
// Implementations hide the storage layout (flat directory vs zip archive).
type PageSource interface {
	// List returns the names of every page in the source, in a stable
	// order. Names are opaque to callers and passed back to Read.
	List(ctx context.Context) ([]string, error)

	// Read returns the raw HTML of one page, UTF-8 decoded with invalid
	// bytes replaced. Returns ENOTFOUND if the page does not exist.
	Read(ctx context.Context, name string) (string, error)
}

// ImageEntrySource additionally lists image files stored directly in the
// archive (as opposed to images referenced from HTML).
type ImageEntrySource interface {
	PageSource

	// ImageEntries returns the paths of direct image files in the archive.
	ImageEntries(ctx context.Context) ([]string, error)
}
