package fs_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skowalczyk/forage"
	"github.com/skowalczyk/forage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTopicArtifact(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a written topic", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		topic := &forage.Topic{
			Title:   "Engine swap",
			TopicID: intPtr(42),
			Section: "Technical",
			Posts: []forage.Post{
				{Author: "alice", Content: "first post", Quotes: []forage.Quote{{Author: "bob", Content: "context"}}},
			},
		}

		w := fs.NewTopicWriter(dir)
		name, err := w.WriteTopic(context.Background(), "_viewtopic.php_t_42.html", topic)
		require.NoError(t, err)

		got, err := fs.ReadTopicArtifact(filepath.Join(dir, name))
		require.NoError(t, err)

		assert.Equal(t, "Engine swap", got.Title)
		require.NotNil(t, got.TopicID)
		assert.Equal(t, 42, *got.TopicID)
		require.Len(t, got.Posts, 1)
		assert.Equal(t, "first post", got.Posts[0].Content)
		require.Len(t, got.Posts[0].Quotes, 1)
		assert.Equal(t, "bob", got.Posts[0].Quotes[0].Author)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadTopicArtifact(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Equal(t, forage.ENOTFOUND, forage.ErrorCode(err))
	})
}

func TestParseWikiArtifact(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a formatted page", func(t *testing.T) {
		t.Parallel()

		page := &forage.WikiPage{
			Title:      "Iron plate",
			Categories: []string{"Intermediate products"},
			Links:      []forage.Link{{Text: "Furnace", Href: "Furnace"}},
			Content:    "Iron plates are made by smelting iron ore.",
		}

		content, err := fs.FormatWikiPage(page)
		require.NoError(t, err)

		got, err := fs.ParseWikiArtifact(content)
		require.NoError(t, err)

		assert.Equal(t, page.Title, got.Title)
		assert.Equal(t, page.Categories, got.Categories)
		assert.Equal(t, page.Links, got.Links)
		assert.Equal(t, page.Content, got.Content)
	})

	t.Run("rejects content without metadata block", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ParseWikiArtifact("just some text")
		require.Error(t, err)
		assert.Equal(t, forage.EINVALID, forage.ErrorCode(err))
	})
}

func TestReadImageIndex(t *testing.T) {
	t.Parallel()

	t.Run("round-trips written rows", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		w, err := fs.NewImageIndexWriter(&buf)
		require.NoError(t, err)

		ref := forage.ImageRef{
			Name:       "Gearbox",
			Extension:  ".png",
			URL:        "https://wiki.example.com/images/Gearbox.png",
			Src:        "images/Gearbox.png",
			Alt:        "Gearbox",
			SourceFile: "_Gearbox.html",
		}
		require.NoError(t, w.Append(ref))
		require.NoError(t, w.Flush())

		refs, err := fs.ReadImageIndex(strings.NewReader(buf.String()))
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, ref, refs[0])
	})
}

func TestReadTopicIndex(t *testing.T) {
	t.Parallel()

	t.Run("round-trips written rows", func(t *testing.T) {
		t.Parallel()

		var buf strings.Builder
		w, err := fs.NewTopicIndexWriter(&buf)
		require.NoError(t, err)

		row := forage.TopicIndexRow{
			Filename:  "topic_42.json",
			Title:     "Engine swap",
			TopicID:   intPtr(42),
			URL:       "https://forum.example.com/viewtopic.php?t=42",
			Section:   "Technical",
			Author:    "alice",
			Timestamp: "2019-03-02T11:05:00+00:00",
			PostCount: 3,
		}
		require.NoError(t, w.Append(row))
		require.NoError(t, w.Flush())

		rows, err := fs.ReadTopicIndex(strings.NewReader(buf.String()))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, row, rows[0])
	})
}
