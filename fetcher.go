package forage

import "context"

// Fetcher retrieves raw HTML from URLs. Both target sites serve complete
// static markup, so implementations are plain HTTP clients.
type Fetcher interface {
	// Fetch retrieves the page body at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
