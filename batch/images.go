package batch

import (
	"context"
	"log/slog"
	"sort"

	"github.com/skowalczyk/forage"
)

// DirectSourceFile marks image references that come from direct archive
// entries rather than from a scanned page.
const DirectSourceFile = "direct_file"

// ImageRunner collects image references from an archive: first the direct
// image entries, then references embedded in the HTML pages. Names are
// deduplicated globally across both passes on the run, first occurrence
// wins. The collected references are appended to the index sorted by name.
type ImageRunner struct {
	Source  forage.ImageEntrySource
	Scanner forage.ImageScanner
	Index   forage.ImageIndex

	// BaseURL is the download URL prefix for direct archive entries.
	BaseURL string

	Logger *slog.Logger
}

// Process collects references for a single run. A page that fails to scan
// is logged and counted, never fatal.
func (r *ImageRunner) Process(ctx context.Context, run *forage.Run, progress ProgressFunc) (*Result, error) {
	logger := loggerOrDefault(r.Logger).With("component", "images")

	entries, err := r.Source.ImageEntries(ctx)
	if err != nil {
		return nil, err
	}
	names, err := r.Source.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	total := len(entries) + len(names)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	var refs []forage.ImageRef

	for _, entry := range entries {
		name := forage.CleanImageName(entry)
		if name == "" || !run.MarkImage(name) {
			result.Skipped++
			continue
		}
		ext := forage.ImageExtension(entry)
		refs = append(refs, forage.ImageRef{
			Name:       name,
			Extension:  ext,
			URL:        forage.ImageURL(r.BaseURL, name, ext),
			Src:        entry,
			SourceFile: DirectSourceFile,
		})
		result.Processed++
	}

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		pageRefs, err := r.scanPage(ctx, name, run)
		if err != nil {
			result.Failed++
			logger.Warn("skipping page", "name", name, "error", err)
			notify(progress, ProgressEvent{Type: ProgressFailed, Completed: len(entries) + i + 1, Total: total, Name: name, Error: err})
			continue
		}

		refs = append(refs, pageRefs...)
		result.Processed += len(pageRefs)
		notify(progress, ProgressEvent{Type: ProgressCompleted, Completed: len(entries) + i + 1, Total: total, Name: name})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	for _, ref := range refs {
		if err := r.Index.Append(ref); err != nil {
			return result, err
		}
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	logger.Info("image collection finished",
		"unique", run.ImageCount(), "collected", result.Processed, "failed", result.Failed)

	return result, nil
}

func (r *ImageRunner) scanPage(ctx context.Context, name string, run *forage.Run) ([]forage.ImageRef, error) {
	html, err := r.Source.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	return r.Scanner.ScanImages(html, name, run)
}
