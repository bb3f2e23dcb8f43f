package http_test

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	forgehttp "github.com/skowalczyk/forage/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("discovers urls from robots sitemap directive", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		var srv *httptest.Server
		mux.HandleFunc("/robots.txt", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			fmt.Fprintf(w, "User-agent: *\nSitemap: %s/pages.xml\n", srv.URL)
		})
		mux.HandleFunc("/pages.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			fmt.Fprintf(w, `<?xml version="1.0"?>
<urlset>
  <url><loc>%s/Main_Page</loc></url>
  <url><loc>%s/Iron_plate</loc></url>
</urlset>`, srv.URL, srv.URL)
		})
		srv = httptest.NewServer(mux)
		defer srv.Close()

		svc := forgehttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/Main_Page", srv.URL + "/Iron_plate"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		var srv *httptest.Server
		mux.HandleFunc("/sitemap.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/Only_Page</loc></url></urlset>`, srv.URL)
		})
		srv = httptest.NewServer(mux)
		defer srv.Close()

		svc := forgehttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/Only_Page"}, urls)
	})

	t.Run("follows sitemap index recursively", func(t *testing.T) {
		t.Parallel()

		mux := nethttp.NewServeMux()
		var srv *httptest.Server
		mux.HandleFunc("/sitemap.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			fmt.Fprintf(w, `<sitemapindex><sitemap><loc>%s/nested.xml</loc></sitemap></sitemapindex>`, srv.URL)
		})
		mux.HandleFunc("/nested.xml", func(w nethttp.ResponseWriter, r *nethttp.Request) {
			fmt.Fprintf(w, `<urlset><url><loc>%s/Nested_Page</loc></url></urlset>`, srv.URL)
		})
		srv = httptest.NewServer(mux)
		defer srv.Close()

		svc := forgehttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.Equal(t, []string{srv.URL + "/Nested_Page"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.NotFoundHandler())
		defer srv.Close()

		svc := forgehttp.NewSitemapService(nil)
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)
		require.NoError(t, err)

		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})
}
