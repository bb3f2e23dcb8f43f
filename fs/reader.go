package fs

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skowalczyk/forage"
)

// ReadTopicArtifact reads a topic JSON artifact back into a Topic record.
func ReadTopicArtifact(path string) (*forage.Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, forage.Errorf(forage.ENOTFOUND, "topic artifact %q not found", path)
		}
		return nil, err
	}

	var artifact topicArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, forage.Errorf(forage.EINVALID, "topic artifact %q: %s", path, err)
	}

	return &forage.Topic{
		Title:     artifact.TopicInfo.Title,
		TopicID:   artifact.TopicInfo.TopicID,
		PostID:    artifact.TopicInfo.PostID,
		URL:       artifact.TopicInfo.URL,
		Section:   artifact.TopicInfo.Section,
		Timestamp: artifact.TopicInfo.Timestamp,
		Author:    artifact.TopicInfo.Author,
		AuthorID:  artifact.TopicInfo.AuthorID,
		Posts:     artifact.Posts,
	}, nil
}

// ParseWikiArtifact parses a delimited wiki text artifact back into a
// WikiPage record. It is the inverse of FormatWikiPage.
func ParseWikiArtifact(content string) (*forage.WikiPage, error) {
	const delim = "---\n"
	if !strings.HasPrefix(content, delim) {
		return nil, forage.Errorf(forage.EINVALID, "missing metadata block")
	}
	rest := content[len(delim):]

	end := strings.Index(rest, "\n---\n")
	if end == -1 {
		return nil, forage.Errorf(forage.EINVALID, "unterminated metadata block")
	}

	var meta wikiMetadata
	if err := json.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return nil, forage.Errorf(forage.EINVALID, "metadata block: %s", err)
	}

	body := rest[end+len("\n---\n"):]
	body = strings.TrimPrefix(body, "\n")

	return &forage.WikiPage{
		Title:      meta.Title,
		Categories: meta.Categories,
		Links:      meta.Links,
		Content:    body,
	}, nil
}

// ReadImageIndex reads an image reference CSV produced by ImageIndexWriter.
func ReadImageIndex(r io.Reader) ([]forage.ImageRef, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, forage.Errorf(forage.EINVALID, "empty image index")
	}

	// Skip the header row.
	var refs []forage.ImageRef
	for _, rec := range records[1:] {
		if len(rec) < 7 {
			return nil, forage.Errorf(forage.EINVALID, "short image index row")
		}
		refs = append(refs, forage.ImageRef{
			Name:       rec[0],
			Extension:  rec[1],
			URL:        rec[2],
			Src:        rec[3],
			Alt:        rec[4],
			Title:      rec[5],
			SourceFile: rec[6],
		})
	}
	return refs, nil
}

// ReadTopicIndex reads a topic index CSV produced by TopicIndexWriter.
func ReadTopicIndex(r io.Reader) ([]forage.TopicIndexRow, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, forage.Errorf(forage.EINVALID, "empty topic index")
	}

	var rows []forage.TopicIndexRow
	for _, rec := range records[1:] {
		if len(rec) < 9 {
			return nil, forage.Errorf(forage.EINVALID, "short topic index row")
		}
		count, err := strconv.Atoi(rec[8])
		if err != nil {
			return nil, forage.Errorf(forage.EINVALID, "topic index post count: %s", err)
		}
		rows = append(rows, forage.TopicIndexRow{
			Filename:  rec[0],
			Title:     rec[1],
			TopicID:   parseOptInt(rec[2]),
			PostID:    parseOptInt(rec[3]),
			URL:       rec[4],
			Section:   rec[5],
			Author:    rec[6],
			Timestamp: rec[7],
			PostCount: count,
		})
	}
	return rows, nil
}

// parseOptInt parses an optional integer column, "" meaning absent.
func parseOptInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
