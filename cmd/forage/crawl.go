package main

import (
	"fmt"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/crawl"
	"github.com/skowalczyk/forage/fs"
	foragehttp "github.com/skowalczyk/forage/http"
	foragelog "github.com/skowalczyk/forage/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var filter forage.LinkFilter
	switch c.Site {
	case "wiki":
		filter = crawl.NewWikiLanguageFilter()
	case "forum":
		filter = crawl.NewForumMediaFilter()
	default:
		return forage.Errorf(forage.EINVALID, "unknown site profile %q", c.Site)
	}

	fetcher := foragelog.NewLoggingFetcher(foragehttp.NewFetcher(), deps.Logger)
	defer fetcher.Close()

	frontier := crawl.NewFrontier(1_000_000, 0.01)
	if c.Sitemap {
		urls, err := foragehttp.NewSitemapService(nil).DiscoverURLs(deps.Ctx, c.URL)
		if err != nil {
			return err
		}
		for _, u := range urls {
			frontier.Push(forage.DiscoveredLink{URL: u, Depth: 0})
		}
		fmt.Fprintf(deps.Stdout, "Seeded %d sitemap URLs\n", len(urls))
	}

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Store:       fs.NewPageStore(c.Out),
		Frontier:    frontier,
		Filter:      filter,
		RateLimiter: crawl.NewDomainLimiter(c.RPS),
		Concurrency: c.Workers,
		MaxDepth:    c.Depth,
		MaxPages:    c.MaxPages,
		Logger:      deps.Logger,
	}

	result, err := crawler.Crawl(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%d failed) to %s\n",
		result.Saved, result.Failed, c.Out)
	return nil
}
