package main

import (
	"fmt"
	"os"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/batch"
	"github.com/skowalczyk/forage/fs"
	"github.com/skowalczyk/forage/goquery"
)

// Run executes the images command.
func (c *ImagesCmd) Run(deps *Dependencies) error {
	source, err := fs.OpenZipSource(c.Zip)
	if err != nil {
		return err
	}
	defer source.Close()

	csvFile, err := os.Create(c.CSV)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	index, err := fs.NewImageIndexWriter(csvFile)
	if err != nil {
		return err
	}

	runner := &batch.ImageRunner{
		Source:  source,
		Scanner: goquery.NewImageScanner(c.BaseURL),
		Index:   index,
		BaseURL: c.BaseURL,
		Logger:  deps.Logger,
	}

	result, err := runner.Process(deps.Ctx, forage.NewRun(), progressPrinter(deps))
	if err != nil {
		return err
	}
	if err := index.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Collected %d image references (%d duplicates, %d failed pages) into %s\n",
		result.Processed, result.Skipped, result.Failed, c.CSV)
	return nil
}
