package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/skowalczyk/forage"
	"golang.org/x/sync/errgroup"
)

// DefaultDownloadWorkers bounds parallel image downloads.
const DefaultDownloadWorkers = 5

// Downloader fetches the images named in a collected reference list and
// stores them under OutDir as <name><extension>. Files already on disk
// are never re-downloaded.
type Downloader struct {
	Client      *http.Client
	OutDir      string
	Workers     int
	RateLimiter forage.DomainLimiter
	Logger      *slog.Logger
}

// DownloadResult holds the outcome of a download pass.
type DownloadResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Download fetches every referenced image. Failures are logged and
// counted, never fatal.
func (d *Downloader) Download(ctx context.Context, refs []forage.ImageRef) (*DownloadResult, error) {
	logger := d.logger()

	if err := os.MkdirAll(d.OutDir, 0o755); err != nil {
		return nil, err
	}

	workers := d.Workers
	if workers <= 0 {
		workers = DefaultDownloadWorkers
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	result := &DownloadResult{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			dest := filepath.Join(d.OutDir, ref.Name+ref.Extension)
			if _, err := os.Stat(dest); err == nil {
				mu.Lock()
				result.Skipped++
				mu.Unlock()
				return nil
			}

			if err := d.downloadOne(gctx, client, ref.URL, dest); err != nil {
				mu.Lock()
				result.Failed++
				mu.Unlock()
				logger.Warn("image download failed", "url", ref.URL, "error", err)
				return nil
			}

			mu.Lock()
			result.Downloaded++
			mu.Unlock()
			logger.Debug("image downloaded", "name", ref.Name, "url", ref.URL)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	logger.Info("image download finished",
		"downloaded", result.Downloaded, "skipped", result.Skipped, "failed", result.Failed)

	return result, nil
}

func (d *Downloader) downloadOne(ctx context.Context, client *http.Client, rawURL, dest string) error {
	if d.RateLimiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		if err := d.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dest)
}

func (d *Downloader) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
