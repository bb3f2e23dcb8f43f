package fs

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/skowalczyk/forage"
)

// Ensure index writers implement the forage interfaces at compile time.
var (
	_ forage.TopicIndex = (*TopicIndexWriter)(nil)
	_ forage.ImageIndex = (*ImageIndexWriter)(nil)
)

// TopicIndexWriter appends forum topic rows to a CSV index.
type TopicIndexWriter struct {
	w *csv.Writer
}

// NewTopicIndexWriter creates a TopicIndexWriter and writes the header row.
func NewTopicIndexWriter(w io.Writer) (*TopicIndexWriter, error) {
	cw := csv.NewWriter(w)
	header := []string{"filename", "title", "topic_id", "post_id", "url", "section", "author", "timestamp", "post_count"}
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	return &TopicIndexWriter{w: cw}, nil
}

// Append writes one index row.
func (t *TopicIndexWriter) Append(row forage.TopicIndexRow) error {
	return t.w.Write([]string{
		row.Filename,
		row.Title,
		optInt(row.TopicID),
		optInt(row.PostID),
		row.URL,
		row.Section,
		row.Author,
		row.Timestamp,
		strconv.Itoa(row.PostCount),
	})
}

// Flush writes buffered rows to the underlying writer.
func (t *TopicIndexWriter) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

// ImageIndexWriter appends image reference rows to a CSV index.
type ImageIndexWriter struct {
	w *csv.Writer
}

// NewImageIndexWriter creates an ImageIndexWriter and writes the header row.
func NewImageIndexWriter(w io.Writer) (*ImageIndexWriter, error) {
	cw := csv.NewWriter(w)
	header := []string{"image_name", "extension", "url", "src", "alt", "title", "source_file"}
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	return &ImageIndexWriter{w: cw}, nil
}

// Append writes one index row.
func (i *ImageIndexWriter) Append(ref forage.ImageRef) error {
	return i.w.Write([]string{
		ref.Name,
		ref.Extension,
		ref.URL,
		ref.Src,
		ref.Alt,
		ref.Title,
		ref.SourceFile,
	})
}

// Flush writes buffered rows to the underlying writer.
func (i *ImageIndexWriter) Flush() error {
	i.w.Flush()
	return i.w.Error()
}

// optInt renders an optional integer as its decimal string, or "" for nil.
func optInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
