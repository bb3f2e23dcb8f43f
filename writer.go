package forage

import "context"

// TopicWriter persists one extracted forum topic record.
type TopicWriter interface {
	// WriteTopic writes the record derived from the named source page and
	// returns the name of the artifact it produced (used in index rows).
	WriteTopic(ctx context.Context, sourceName string, topic *Topic) (string, error)
}

// WikiPageWriter persists one extracted wiki page record.
type WikiPageWriter interface {
	// WritePage writes the record derived from the named source page and
	// returns the name of the artifact it produced.
	WritePage(ctx context.Context, sourceName string, page *WikiPage) (string, error)
}

// TopicIndexRow is one row of the flat forum topic index.
type TopicIndexRow struct {
	Filename  string
	Title     string
	TopicID   *int
	PostID    *int
	URL       string
	Section   string
	Author    string
	Timestamp string
	PostCount int
}

// TopicIndex accumulates the flat forum index written alongside per-topic
// records.
type TopicIndex interface {
	Append(row TopicIndexRow) error
}

// ImageIndex accumulates the flat image reference index.
type ImageIndex interface {
	Append(ref ImageRef) error
}
