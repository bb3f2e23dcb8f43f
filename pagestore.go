package forage

import "context"

// PageStore persists fetched pages to the local archive during a crawl.
type PageStore interface {
	// SavePage stores the raw body of the page fetched from url and
	// returns the filename it was stored under.
	SavePage(ctx context.Context, url string, body []byte) (string, error)

	// Has reports whether a page with the given filename already exists.
	Has(name string) bool
}
