package main

import (
	"fmt"
	"os"

	"github.com/skowalczyk/forage/crawl"
	"github.com/skowalczyk/forage/fs"
	foragehttp "github.com/skowalczyk/forage/http"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	csvFile, err := os.Open(c.CSV)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	refs, err := fs.ReadImageIndex(csvFile)
	if err != nil {
		return err
	}

	downloader := &foragehttp.Downloader{
		OutDir:      c.Out,
		Workers:     c.Workers,
		RateLimiter: crawl.NewDomainLimiter(c.RPS),
		Logger:      deps.Logger,
	}

	result, err := downloader.Download(deps.Ctx, refs)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Downloaded %d images (%d cached, %d failed) to %s\n",
		result.Downloaded, result.Skipped, result.Failed, c.Out)
	return nil
}
