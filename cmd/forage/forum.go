package main

import (
	"fmt"
	"os"

	"github.com/skowalczyk/forage/batch"
	"github.com/skowalczyk/forage/fs"
	"github.com/skowalczyk/forage/goquery"
	"github.com/skowalczyk/forage/htmltomarkdown"
	foragelog "github.com/skowalczyk/forage/slog"
)

// Run executes the forum command.
func (c *ForumCmd) Run(deps *Dependencies) error {
	csvFile, err := os.Create(c.CSV)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	index, err := fs.NewTopicIndexWriter(csvFile)
	if err != nil {
		return err
	}

	opts := []goquery.ForumOption{goquery.WithTitleSuffix(c.SiteSuffix)}
	if c.Markdown {
		opts = append(opts, goquery.WithConverter(htmltomarkdown.NewConverter()))
	}

	runner := &batch.ForumRunner{
		Source:    fs.NewDirSource(c.Dir, "viewtopic"),
		Extractor: foragelog.NewLoggingTopicExtractor(goquery.NewForumExtractor(opts...), deps.Logger),
		Writer:    fs.NewTopicWriter(c.Out),
		Index:     index,
		SkipEmpty: c.SkipEmpty,
		Logger:    deps.Logger,
	}

	result, err := runner.Process(deps.Ctx, progressPrinter(deps))
	if err != nil {
		return err
	}
	if err := index.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d topics (%d skipped, %d failed) to %s, index at %s\n",
		result.Processed, result.Skipped, result.Failed, c.Out, c.CSV)
	return nil
}
