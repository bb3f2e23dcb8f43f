package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/skowalczyk/forage"
)

// Ensure writers implement the forage interfaces at compile time.
var (
	_ forage.TopicWriter    = (*TopicWriter)(nil)
	_ forage.WikiPageWriter = (*WikiWriter)(nil)
)

// TopicWriter writes one JSON file per extracted forum topic.
type TopicWriter struct {
	baseDir string
	now     func() time.Time
}

// NewTopicWriter creates a TopicWriter that writes to baseDir.
func NewTopicWriter(baseDir string) *TopicWriter {
	return &TopicWriter{baseDir: baseDir, now: time.Now}
}

// topicInfo is the thread-level metadata block of the topic JSON artifact.
type topicInfo struct {
	Title         string `json:"title"`
	TopicID       *int   `json:"topic_id"`
	PostID        *int   `json:"post_id"`
	URL           string `json:"url"`
	Section       string `json:"section"`
	Timestamp     string `json:"timestamp"`
	Author        string `json:"author"`
	AuthorID      *int   `json:"author_id"`
	ExtractedDate string `json:"extracted_date"`
}

// topicArtifact is the full topic JSON artifact layout.
type topicArtifact struct {
	TopicInfo topicInfo     `json:"topic_info"`
	Posts     []forage.Post `json:"posts"`
}

// WriteTopic writes the topic record as JSON and returns the filename.
func (w *TopicWriter) WriteTopic(ctx context.Context, sourceName string, topic *forage.Topic) (string, error) {
	artifact := topicArtifact{
		TopicInfo: topicInfo{
			Title:         topic.Title,
			TopicID:       topic.TopicID,
			PostID:        topic.PostID,
			URL:           topic.URL,
			Section:       topic.Section,
			Timestamp:     topic.Timestamp,
			Author:        topic.Author,
			AuthorID:      topic.AuthorID,
			ExtractedDate: w.now().UTC().Format(time.RFC3339),
		},
		Posts: make([]forage.Post, 0, len(topic.Posts)),
	}
	// Normalize nil quote slices so the JSON always shows arrays.
	for _, post := range topic.Posts {
		if post.Quotes == nil {
			post.Quotes = []forage.Quote{}
		}
		artifact.Posts = append(artifact.Posts, post)
	}

	data, err := marshalIndented(artifact)
	if err != nil {
		return "", err
	}

	name := TopicFileName(sourceName)
	if err := writeFile(w.baseDir, name, data); err != nil {
		return "", err
	}
	return name, nil
}

// WikiWriter writes one delimited text artifact per extracted wiki page:
// a metadata block wrapped in "---" markers holding the JSON-encoded
// metadata, a blank line, then the normalized body text. This exact layout
// is consumed by downstream dataset-assembly tooling.
type WikiWriter struct {
	baseDir string
}

// NewWikiWriter creates a WikiWriter that writes to baseDir.
func NewWikiWriter(baseDir string) *WikiWriter {
	return &WikiWriter{baseDir: baseDir}
}

// wikiMetadata is the metadata block of the wiki text artifact. Nil slices
// are replaced with empty ones so the JSON always shows arrays.
type wikiMetadata struct {
	Title      string        `json:"title"`
	Categories []string      `json:"categories"`
	Links      []forage.Link `json:"links"`
}

// WritePage writes the page artifact and returns the filename.
func (w *WikiWriter) WritePage(ctx context.Context, sourceName string, page *forage.WikiPage) (string, error) {
	content, err := FormatWikiPage(page)
	if err != nil {
		return "", err
	}

	name := ArtifactFileName(sourceName)
	if err := writeFile(w.baseDir, name, []byte(content)); err != nil {
		return "", err
	}
	return name, nil
}

// FormatWikiPage renders the delimited artifact text for a wiki page.
func FormatWikiPage(page *forage.WikiPage) (string, error) {
	meta := wikiMetadata{
		Title:      page.Title,
		Categories: page.Categories,
		Links:      page.Links,
	}
	if meta.Categories == nil {
		meta.Categories = []string{}
	}
	if meta.Links == nil {
		meta.Links = []forage.Link{}
	}

	data, err := marshalIndented(meta)
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String(), nil
}

// marshalIndented marshals v with two-space indentation and without HTML
// escaping, so artifact metadata stays human-readable.
func marshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeFile writes data under baseDir, creating the directory if needed.
func writeFile(baseDir, name string, data []byte) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(baseDir, name), data, 0644)
}
