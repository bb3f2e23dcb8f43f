package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/skowalczyk/forage"
	forgehttp "github.com/skowalczyk/forage/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("downloads images into the output directory", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Write([]byte("imagedata:" + r.URL.Path))
		}))
		defer srv.Close()

		outDir := t.TempDir()
		d := &forgehttp.Downloader{OutDir: outDir}

		refs := []forage.ImageRef{
			{Name: "gearbox", Extension: ".png", URL: srv.URL + "/gearbox.png"},
			{Name: "engine", Extension: ".jpg", URL: srv.URL + "/engine.jpg"},
		}

		result, err := d.Download(context.Background(), refs)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Downloaded)
		data, err := os.ReadFile(filepath.Join(outDir, "gearbox.png"))
		require.NoError(t, err)
		assert.Equal(t, "imagedata:/gearbox.png", string(data))
	})

	t.Run("skips files already on disk", func(t *testing.T) {
		t.Parallel()

		var hits int
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			hits++
			w.Write([]byte("fresh"))
		}))
		defer srv.Close()

		outDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(outDir, "logo.png"), []byte("cached"), 0o644))

		d := &forgehttp.Downloader{OutDir: outDir}
		result, err := d.Download(context.Background(), []forage.ImageRef{
			{Name: "logo", Extension: ".png", URL: srv.URL + "/logo.png"},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 0, hits)

		data, err := os.ReadFile(filepath.Join(outDir, "logo.png"))
		require.NoError(t, err)
		assert.Equal(t, "cached", string(data))
	})

	t.Run("counts failed downloads and continues", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.URL.Path == "/missing.png" {
				w.WriteHeader(nethttp.StatusNotFound)
				return
			}
			w.Write([]byte("ok"))
		}))
		defer srv.Close()

		d := &forgehttp.Downloader{OutDir: t.TempDir()}
		result, err := d.Download(context.Background(), []forage.ImageRef{
			{Name: "missing", Extension: ".png", URL: srv.URL + "/missing.png"},
			{Name: "present", Extension: ".png", URL: srv.URL + "/present.png"},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Downloaded)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("leaves no partial file on failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		}))
		defer srv.Close()

		outDir := t.TempDir()
		d := &forgehttp.Downloader{OutDir: outDir}
		_, err := d.Download(context.Background(), []forage.ImageRef{
			{Name: "broken", Extension: ".png", URL: srv.URL + "/broken.png"},
		})
		require.NoError(t, err)

		entries, err := os.ReadDir(outDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
