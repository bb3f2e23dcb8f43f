package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/skowalczyk/forage"
)

// Syncer tops up the local topic archive: it reads forum listing pages,
// finds topic links that are not saved yet, and fetches only those. Pages
// already on disk are never re-fetched, unlike a full crawl.
type Syncer struct {
	Fetcher forage.Fetcher
	Store   forage.PageStore

	// Name maps a topic URL to the filename it would be stored under,
	// used to test the archive for existing pages.
	Name func(rawURL string) (string, error)

	RateLimiter forage.DomainLimiter
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// SyncResult holds the outcome of a sync pass.
type SyncResult struct {
	Listed  int
	Fetched int
	Skipped int
	Failed  int
}

// Sync reads one listing page and fetches its unsaved topics. A topic that
// fails to fetch is logged and counted, never fatal.
func (s *Syncer) Sync(ctx context.Context, listingURL string) (*SyncResult, error) {
	logger := s.logger()

	base, err := url.Parse(listingURL)
	if err != nil {
		return nil, forage.Errorf(forage.EINVALID, "invalid listing url %q", listingURL)
	}

	listing, err := s.fetch(ctx, base.Host, listingURL)
	if err != nil {
		return nil, err
	}

	links, err := ExtractLinks(listing, base)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	seen := make(map[string]struct{})

	for _, link := range links {
		if !strings.Contains(link, "viewtopic.php") {
			continue
		}
		link = stripFragment(link)
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		result.Listed++

		name, err := s.Name(link)
		if err != nil {
			result.Failed++
			logger.Warn("unusable topic url", "url", link, "error", err)
			continue
		}
		if s.Store.Has(name) {
			result.Skipped++
			continue
		}

		html, err := s.fetch(ctx, base.Host, link)
		if err != nil {
			result.Failed++
			logger.Warn("topic fetch failed", "url", link, "error", err)
			continue
		}
		if _, err := s.Store.SavePage(ctx, link, []byte(html)); err != nil {
			result.Failed++
			logger.Warn("topic save failed", "url", link, "error", err)
			continue
		}
		result.Fetched++
	}

	logger.Info("sync finished",
		"listed", result.Listed, "fetched", result.Fetched,
		"skipped", result.Skipped, "failed", result.Failed)

	return result, nil
}

func (s *Syncer) fetch(ctx context.Context, host, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, host); err != nil {
			return "", err
		}
	}
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetry(ctx, rawURL, s.Fetcher.Fetch, s.Logger, delays)
}

func (s *Syncer) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
