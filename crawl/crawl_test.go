package crawl_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/crawl"
	"github.com/skowalczyk/forage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore collects saved pages keyed by URL.
type memoryStore struct {
	mu    sync.Mutex
	pages map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{pages: make(map[string]string)}
}

func (s *memoryStore) SavePage(_ context.Context, url string, body []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[url] = string(body)
	return url, nil
}

func (s *memoryStore) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pages[name]
	return ok
}

func newCrawler(site map[string]string, store forage.PageStore) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				html, ok := site[url]
				if !ok {
					return "", errors.New("HTTP 404")
				}
				return html, nil
			},
		},
		Store:       store,
		Frontier:    crawl.NewFrontier(1000, 0.01),
		RetryDelays: []time.Duration{},
	}
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("walks same-host links breadth first", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{
			"https://wiki.example.com/Main_Page": `<a href="/A">A</a> <a href="/B">B</a>`,
			"https://wiki.example.com/A":         `<a href="/C">C</a>`,
			"https://wiki.example.com/B":         `no links`,
			"https://wiki.example.com/C":         `<a href="https://other.example.org/x">x</a>`,
		}
		store := newMemoryStore()

		result, err := newCrawler(site, store).Crawl(context.Background(), "https://wiki.example.com/Main_Page")
		require.NoError(t, err)

		assert.Equal(t, 4, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.True(t, store.Has("https://wiki.example.com/C"))
		assert.False(t, store.Has("https://other.example.org/x"))
	})

	t.Run("counts failed pages and continues", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{
			"https://wiki.example.com/Main_Page": `<a href="/Missing">missing</a> <a href="/A">A</a>`,
			"https://wiki.example.com/A":         `ok`,
		}
		store := newMemoryStore()

		result, err := newCrawler(site, store).Crawl(context.Background(), "https://wiki.example.com/Main_Page")
		require.NoError(t, err)

		assert.Equal(t, 2, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("respects max pages", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{
			"https://wiki.example.com/Main_Page": `<a href="/A">A</a> <a href="/B">B</a> <a href="/C">C</a>`,
			"https://wiki.example.com/A":         ``,
			"https://wiki.example.com/B":         ``,
			"https://wiki.example.com/C":         ``,
		}
		store := newMemoryStore()

		c := newCrawler(site, store)
		c.Concurrency = 1
		c.MaxPages = 2

		result, err := c.Crawl(context.Background(), "https://wiki.example.com/Main_Page")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Saved)
	})

	t.Run("respects max depth", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{
			"https://wiki.example.com/Main_Page": `<a href="/A">A</a>`,
			"https://wiki.example.com/A":         `<a href="/B">B</a>`,
			"https://wiki.example.com/B":         ``,
		}
		store := newMemoryStore()

		c := newCrawler(site, store)
		c.MaxDepth = 1

		result, err := c.Crawl(context.Background(), "https://wiki.example.com/Main_Page")
		require.NoError(t, err)

		assert.Equal(t, 2, result.Saved)
		assert.False(t, store.Has("https://wiki.example.com/B"))
	})

	t.Run("applies the link filter", func(t *testing.T) {
		t.Parallel()

		site := map[string]string{
			"https://wiki.example.com/Main_Page":     `<a href="/Iron_plate">en</a> <a href="/Iron_plate/de">de</a>`,
			"https://wiki.example.com/Iron_plate":    ``,
			"https://wiki.example.com/Iron_plate/de": ``,
		}
		store := newMemoryStore()

		c := newCrawler(site, store)
		c.Filter = crawl.NewWikiLanguageFilter()

		result, err := c.Crawl(context.Background(), "https://wiki.example.com/Main_Page")
		require.NoError(t, err)

		assert.Equal(t, 2, result.Saved)
		assert.False(t, store.Has("https://wiki.example.com/Iron_plate/de"))
	})

	t.Run("rejects invalid start url", func(t *testing.T) {
		t.Parallel()

		c := newCrawler(nil, newMemoryStore())
		_, err := c.Crawl(context.Background(), "://not-a-url")
		require.Error(t, err)
		assert.Equal(t, forage.EINVALID, forage.ErrorCode(err))
	})
}
