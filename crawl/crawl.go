// Package crawl provides the site crawler that fills the local page
// archive: breadth-first link walking with deduplication, per-domain rate
// limiting, retries, and bounded concurrency.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/skowalczyk/forage"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxDepth bounds link walking when no depth is configured.
const DefaultMaxDepth = 5

// Crawler walks a site from a start URL and saves every visited page to
// the store. Pages already present in the store are fetched again (the
// archive is refreshed); URL deduplication only applies within one crawl.
type Crawler struct {
	Fetcher     forage.Fetcher
	Store       forage.PageStore
	Frontier    forage.URLFrontier
	Filter      forage.LinkFilter
	RateLimiter forage.DomainLimiter

	Concurrency int
	MaxDepth    int
	MaxPages    int
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// Result holds the outcome of a crawl.
type Result struct {
	Saved  int
	Failed int
}

// Crawl walks the site starting from startURL until the frontier is
// exhausted or MaxPages is reached. Per-page fetch failures are logged and
// counted, never fatal.
func (c *Crawler) Crawl(ctx context.Context, startURL string) (*Result, error) {
	logger := c.logger()

	start, err := url.Parse(startURL)
	if err != nil {
		return nil, forage.Errorf(forage.EINVALID, "invalid start url %q", startURL)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	c.Frontier.Push(forage.DiscoveredLink{URL: start.String(), Depth: 0})

	result := &Result{}
	var mu sync.Mutex

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// Drain the frontier one level of concurrency at a time.
		var batch []forage.DiscoveredLink
		for len(batch) < concurrency {
			mu.Lock()
			budgetLeft := c.MaxPages <= 0 || result.Saved+result.Failed+len(batch) < c.MaxPages
			mu.Unlock()
			if !budgetLeft {
				break
			}
			link, ok := c.Frontier.Pop()
			if !ok {
				break
			}
			batch = append(batch, link)
		}
		if len(batch) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, link := range batch {
			link := link
			g.Go(func() error {
				links, err := c.visit(gctx, link, start)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed++
					logger.Warn("page failed", "url", link.URL, "error", err)
					return nil
				}
				result.Saved++
				if link.Depth < maxDepth {
					for _, found := range links {
						c.Frontier.Push(forage.DiscoveredLink{URL: found, Depth: link.Depth + 1})
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return result, err
		}
	}

	logger.Info("crawl finished", "saved", result.Saved, "failed", result.Failed)
	return result, nil
}

// visit fetches one page, saves it, and returns the followable links it
// contains.
func (c *Crawler) visit(ctx context.Context, link forage.DiscoveredLink, base *url.URL) ([]string, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, base.Host); err != nil {
			return nil, err
		}
	}

	html, err := FetchWithRetry(ctx, link.URL, c.Fetcher.Fetch, c.Logger, c.retryDelays())
	if err != nil {
		return nil, err
	}

	name, err := c.Store.SavePage(ctx, link.URL, []byte(html))
	if err != nil {
		return nil, err
	}
	c.logger().Debug("page saved", "url", link.URL, "name", name, "depth", link.Depth)

	found, err := ExtractLinks(html, base)
	if err != nil {
		return nil, err
	}

	var followable []string
	for _, u := range found {
		if c.Filter != nil && c.Filter.Skip(u) {
			continue
		}
		followable = append(followable, u)
	}
	return followable, nil
}

func (c *Crawler) retryDelays() []time.Duration {
	if c.RetryDelays != nil {
		return c.RetryDelays
	}
	return DefaultRetryDelays()
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
