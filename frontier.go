package forage

import "context"

// DiscoveredLink is a URL queued for crawling, with the depth at which it
// was discovered.
type DiscoveredLink struct {
	URL   string
	Depth int
}

// URLFrontier manages a crawl queue with deduplication.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link DiscoveredLink) bool

	// Pop returns the next link in discovery order.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// LinkFilter decides whether a discovered URL should be crawled. Filters
// encode per-site skip rules such as language-variant wiki pages or forum
// media downloads.
type LinkFilter interface {
	// Skip returns true if the URL should not be crawled.
	Skip(rawURL string) bool
}
