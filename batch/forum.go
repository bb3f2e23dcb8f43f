package batch

import (
	"context"
	"log/slog"

	"github.com/skowalczyk/forage"
)

// ForumRunner extracts every topic page in a source, writes one record
// per topic, and appends a row per written record to the flat index.
type ForumRunner struct {
	Source    forage.PageSource
	Extractor forage.TopicExtractor
	Writer    forage.TopicWriter
	Index     forage.TopicIndex

	// SkipEmpty drops topics with no recognizable post blocks instead of
	// writing empty records.
	SkipEmpty bool

	Logger *slog.Logger
}

// Process runs the pipeline over every page in the source. A failing page
// is logged and counted, never fatal; only listing the source can fail the
// run as a whole.
func (r *ForumRunner) Process(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := loggerOrDefault(r.Logger).With("component", "forum")

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

		skipped, err := r.processPage(ctx, name)
		switch {
		case err != nil:
			result.Failed++
			logger.Warn("skipping page", "name", name, "error", err)
			notify(progress, ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(names), Name: name, Error: err})
		case skipped:
			result.Skipped++
			logger.Info("skipping empty topic", "name", name)
			notify(progress, ProgressEvent{Type: ProgressSkipped, Completed: i + 1, Total: len(names), Name: name})
		default:
			result.Processed++
			notify(progress, ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: len(names), Name: name})
		}
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: len(names), Total: len(names)})
	logger.Info("forum extraction finished",
		"processed", result.Processed, "skipped", result.Skipped, "failed", result.Failed)

	return result, nil
}

func (r *ForumRunner) processPage(ctx context.Context, name string) (skipped bool, err error) {
	html, err := r.Source.Read(ctx, name)
	if err != nil {
		return false, err
	}

	topic, err := r.Extractor.ExtractTopic(html)
	if err != nil {
		return false, err
	}

	if r.SkipEmpty && len(topic.Posts) == 0 {
		return true, nil
	}

	artifact, err := r.Writer.WriteTopic(ctx, name, topic)
	if err != nil {
		return false, err
	}

	if r.Index != nil {
		row := forage.TopicIndexRow{
			Filename:  artifact,
			Title:     topic.Title,
			TopicID:   topic.TopicID,
			PostID:    topic.PostID,
			URL:       topic.URL,
			Section:   topic.Section,
			Author:    topic.Author,
			Timestamp: topic.Timestamp,
			PostCount: len(topic.Posts),
		}
		if err := r.Index.Append(row); err != nil {
			return false, err
		}
	}

	return false, nil
}
