package main

import (
	"fmt"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/crawl"
	"github.com/skowalczyk/forage/fs"
	foragehttp "github.com/skowalczyk/forage/http"
	foragelog "github.com/skowalczyk/forage/slog"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	switch {
	case c.URL != "" && c.Move != "":
		return forage.Errorf(forage.EINVALID, "--url and --move are mutually exclusive")
	case c.Move != "":
		moved, err := fs.MoveMatching(c.Move, c.Dir, "_viewtopic")
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Moved %d topic files to %s\n", moved, c.Dir)
		return nil
	case c.URL != "":
		fetcher := foragelog.NewLoggingFetcher(foragehttp.NewFetcher(), deps.Logger)
		defer fetcher.Close()

		syncer := &crawl.Syncer{
			Fetcher:     fetcher,
			Store:       fs.NewPageStore(c.Dir),
			Name:        fs.PageFileName,
			RateLimiter: crawl.NewDomainLimiter(2),
			Logger:      deps.Logger,
		}

		result, err := syncer.Sync(deps.Ctx, c.URL)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Listed %d topics: %d fetched, %d already saved, %d failed\n",
			result.Listed, result.Fetched, result.Skipped, result.Failed)
		return nil
	default:
		return forage.Errorf(forage.EINVALID, "either --url or --move is required")
	}
}
