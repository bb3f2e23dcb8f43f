package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skowalczyk/forage/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns first successful result", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := crawl.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("HTTP 503")
			}
			return "ok", nil
		}

		html, err := crawl.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhausting retries", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("HTTP 503")
		}

		_, err := crawl.FetchWithRetry(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("HTTP 503")
		}

		_, err := crawl.FetchWithRetry(ctx, "https://example.com", fetch, nil, []time.Duration{time.Minute})
		require.ErrorIs(t, err, context.Canceled)
	})
}
