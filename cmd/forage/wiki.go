package main

import (
	"fmt"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/batch"
	"github.com/skowalczyk/forage/fs"
	"github.com/skowalczyk/forage/goquery"
	foragelog "github.com/skowalczyk/forage/slog"
)

// Run executes the wiki command.
func (c *WikiCmd) Run(deps *Dependencies) error {
	source, cleanup, err := openPageSource(c.Zip, c.Dir, "")
	if err != nil {
		return err
	}
	defer cleanup()

	extractor := goquery.NewWikiExtractor(goquery.WithTableFormat(forage.TableFormat(c.TableFormat)))
	runner := &batch.WikiRunner{
		Source:    source,
		Extractor: foragelog.NewLoggingWikiExtractor(extractor, deps.Logger),
		Writer:    fs.NewWikiWriter(c.Out),
		Logger:    deps.Logger,
	}

	result, err := runner.Process(deps.Ctx, progressPrinter(deps))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d pages (%d failed) to %s\n",
		result.Processed, result.Failed, c.Out)
	return nil
}

// openPageSource opens a zip archive or a page directory, whichever was
// given. The returned cleanup closes the archive handle when there is one.
func openPageSource(zipPath, dir, filter string) (forage.PageSource, func(), error) {
	switch {
	case zipPath != "" && dir != "":
		return nil, nil, forage.Errorf(forage.EINVALID, "--zip and --dir are mutually exclusive")
	case zipPath != "":
		src, err := fs.OpenZipSource(zipPath)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { src.Close() }, nil
	case dir != "":
		return fs.NewDirSource(dir, filter), func() {}, nil
	default:
		return nil, nil, forage.Errorf(forage.EINVALID, "either --zip or --dir is required")
	}
}

// progressPrinter reports per-file failures on stderr as the batch runs.
func progressPrinter(deps *Dependencies) batch.ProgressFunc {
	return func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d files\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %v\n", event.Name, event.Error)
		}
	}
}
