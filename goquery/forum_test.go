package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/goquery"
	"github.com/skowalczyk/forage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumExtractorTopicInfo(t *testing.T) {
	t.Parallel()

	t.Run("extracts metadata from head tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Belt throughput question - Example Forums</title>
<meta property="og:url" content="https://forums.example.com/viewtopic.php?t=4521&amp;p=31877">
<meta property="article:section" content="Gameplay Help">
<meta property="article:author" content="Alice">
<meta property="article:published_time" content="2021-03-14T09:26:53+00:00">
</head>
<body>
<a href="./memberlist.php?mode=viewprofile&amp;u=918">Alice</a>
</body>
</html>`

		extractor := goquery.NewForumExtractor(goquery.WithTitleSuffix(" - Example Forums"))
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		assert.Equal(t, "Belt throughput question", topic.Title)
		assert.Equal(t, "https://forums.example.com/viewtopic.php?t=4521&p=31877", topic.URL)
		require.NotNil(t, topic.TopicID)
		assert.Equal(t, 4521, *topic.TopicID)
		require.NotNil(t, topic.PostID)
		assert.Equal(t, 31877, *topic.PostID)
		assert.Equal(t, "Gameplay Help", topic.Section)
		assert.Equal(t, "Alice", topic.Author)
		assert.Equal(t, "2021-03-14T09:26:53+00:00", topic.Timestamp)
		require.NotNil(t, topic.AuthorID)
		assert.Equal(t, 918, *topic.AuthorID)
	})

	t.Run("leaves fields empty when tags are missing", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(`<html><body><p>nothing here</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, topic.Title)
		assert.Empty(t, topic.URL)
		assert.Nil(t, topic.TopicID)
		assert.Nil(t, topic.PostID)
		assert.Empty(t, topic.Section)
		assert.Empty(t, topic.Author)
		assert.Empty(t, topic.Timestamp)
		assert.Nil(t, topic.AuthorID)
		assert.Empty(t, topic.Posts)
	})

	t.Run("keeps title verbatim without configured suffix", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(`<html><head><title>Topic - Example Forums</title></head><body></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Topic - Example Forums", topic.Title)
	})

	t.Run("parses topic id without post id", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:url" content="https://forums.example.com/viewtopic.php?t=99"></head><body></body></html>`

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.NotNil(t, topic.TopicID)
		assert.Equal(t, 99, *topic.TopicID)
		assert.Nil(t, topic.PostID)
	})
}

func TestForumExtractorPosts(t *testing.T) {
	t.Parallel()

	t.Run("returns one record per post block in document order", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 1; i <= 5; i++ {
			fmt.Fprintf(&b, `<div class="post" id="p%d"><div class="content">post number %d</div></div>`, i*100, i)
		}
		b.WriteString("</body></html>")

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(b.String())

		require.NoError(t, err)
		require.Len(t, topic.Posts, 5)
		for i, post := range topic.Posts {
			require.NotNil(t, post.PostID)
			assert.Equal(t, (i+1)*100, *post.PostID)
			assert.Equal(t, fmt.Sprintf("post number %d", i+1), post.Content)
		}
	})

	t.Run("excises quotes from post content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="post" id="p123">
<a class="username" href="./memberlist.php?mode=viewprofile&amp;u=77">Alice</a>
<time datetime="2021-03-14T10:00:00+00:00">Sun Mar 14, 2021</time>
<div class="content"><blockquote><cite>Bob</cite><div class="quote-content">hi</div></blockquote> thanks Bob!</div>
</div>
</body></html>`

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)

		post := topic.Posts[0]
		require.NotNil(t, post.PostID)
		assert.Equal(t, 123, *post.PostID)
		assert.Equal(t, "Alice", post.Author)
		require.NotNil(t, post.AuthorID)
		assert.Equal(t, 77, *post.AuthorID)
		assert.Equal(t, "2021-03-14T10:00:00+00:00", post.Date)
		assert.Equal(t, "thanks Bob!", post.Content)

		require.Len(t, post.Quotes, 1)
		assert.Equal(t, "Bob", post.Quotes[0].Author)
		assert.Equal(t, "hi", post.Quotes[0].Content)

		// The excised quote text must not leak back into the post body.
		assert.NotContains(t, post.Content, post.Quotes[0].Content)
	})

	t.Run("collects multiple quotes in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post" id="p1"><div class="content">
<blockquote><cite>First</cite><div class="quote-content">alpha quote body</div></blockquote>
<blockquote><cite>Second</cite><div class="quote-content">beta quote body</div></blockquote>
my reply</div></div></body></html>`

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)

		post := topic.Posts[0]
		require.Len(t, post.Quotes, 2)
		assert.Equal(t, forage.Quote{Author: "First", Content: "alpha quote body"}, post.Quotes[0])
		assert.Equal(t, forage.Quote{Author: "Second", Content: "beta quote body"}, post.Quotes[1])
		assert.Equal(t, "my reply", post.Content)
		for _, q := range post.Quotes {
			assert.NotContains(t, post.Content, q.Content)
		}
	})

	t.Run("yields zero values for missing post sub-elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post"><div class="content">bare post</div></div></body></html>`

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)

		post := topic.Posts[0]
		assert.Nil(t, post.PostID)
		assert.Empty(t, post.Author)
		assert.Nil(t, post.AuthorID)
		assert.Empty(t, post.Date)
		assert.Equal(t, "bare post", post.Content)
		assert.Empty(t, post.Quotes)
	})

	t.Run("keeps post with missing content region", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post" id="p7"></div></body></html>`

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)
		assert.Empty(t, topic.Posts[0].Content)
		assert.Empty(t, topic.Posts[0].Quotes)
	})

	t.Run("joins post text across nested elements with spaces", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post" id="p9"><div class="content"><p>first line</p><p>second line</p></div></body></html>`

		extractor := goquery.NewForumExtractor()
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)
		assert.Equal(t, "first line second line", topic.Posts[0].Content)
	})

	t.Run("renders post content through converter when set", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post"><div class="content"><p>body <b>bold</b></p></div></div></body></html>`
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Contains(t, html, "<b>bold</b>")
				return "body **bold**\n", nil
			},
		}

		extractor := goquery.NewForumExtractor(goquery.WithConverter(converter))
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)
		assert.Equal(t, "body **bold**", topic.Posts[0].Content)
	})

	t.Run("falls back to plain text when conversion fails", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="post"><div class="content"><p>plain body</p></div></div></body></html>`
		converter := &mock.Converter{
			ConvertFn: func(string) (string, error) {
				return "", forage.Errorf(forage.EINTERNAL, "conversion failed")
			},
		}

		extractor := goquery.NewForumExtractor(goquery.WithConverter(converter))
		topic, err := extractor.ExtractTopic(html)

		require.NoError(t, err)
		require.Len(t, topic.Posts, 1)
		assert.Equal(t, "plain body", topic.Posts[0].Content)
	})
}
