package batch

import (
	"context"
	"log/slog"

	"github.com/skowalczyk/forage"
)

// WikiRunner extracts every wiki page in a source and writes one text
// artifact per page.
type WikiRunner struct {
	Source    forage.PageSource
	Extractor forage.WikiExtractor
	Writer    forage.WikiPageWriter

	Logger *slog.Logger
}

// Process runs the pipeline over every page in the source. Pages that fail
// to parse or write are logged and counted, never fatal.
func (r *WikiRunner) Process(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := loggerOrDefault(r.Logger).With("component", "wiki")

	names, err := r.Source.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: len(names)})

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := r.processPage(ctx, name); err != nil {
			result.Failed++
			logger.Warn("skipping page", "name", name, "error", err)
			notify(progress, ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(names), Name: name, Error: err})
			continue
		}

		result.Processed++
		notify(progress, ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: len(names), Name: name})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: len(names), Total: len(names)})
	logger.Info("wiki extraction finished",
		"processed", result.Processed, "failed", result.Failed)

	return result, nil
}

func (r *WikiRunner) processPage(ctx context.Context, name string) error {
	html, err := r.Source.Read(ctx, name)
	if err != nil {
		return err
	}

	page, err := r.Extractor.ExtractPage(html)
	if err != nil {
		return err
	}

	_, err = r.Writer.WritePage(ctx, name, page)
	return err
}
