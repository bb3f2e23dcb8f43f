package crawl_test

import (
	"net/url"
	"testing"

	"github.com/skowalczyk/forage/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://wiki.example.com/Main_Page")
	require.NoError(t, err)

	t.Run("resolves relative links against the base", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/Iron_plate">Iron plate</a>
			<a href="Transport_belt">Transport belt</a>
		</body></html>`

		links, err := crawl.ExtractLinks(html, base)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://wiki.example.com/Iron_plate",
			"https://wiki.example.com/Transport_belt",
		}, links)
	})

	t.Run("drops external hosts", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="https://other.example.org/page">external</a>
			<a href="/local">local</a>
		</body></html>`

		links, err := crawl.ExtractLinks(html, base)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://wiki.example.com/local"}, links)
	})

	t.Run("drops fragment and javascript links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="#section">anchor</a>
			<a href="javascript:void(0)">script</a>
			<a href="">empty</a>
		</body></html>`

		links, err := crawl.ExtractLinks(html, base)
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("keeps query strings", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/index.php?title=Special:RecentChanges&days=7">changes</a>`

		links, err := crawl.ExtractLinks(html, base)
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Contains(t, links[0], "title=Special:RecentChanges")
	})
}
