package forage

import "context"

// SitemapService discovers page URLs from a site's sitemap. Used to seed
// the crawl frontier when the wiki publishes one.
type SitemapService interface {
	// DiscoverURLs returns all page URLs listed in the site's sitemaps.
	// Returns an empty slice (not nil) when no sitemap is found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
