package forage

import "context"

// TopicService manages forum topics in the dataset store.
type TopicService interface {
	// CreateTopic stores a topic and its posts.
	CreateTopic(ctx context.Context, topic *Topic) error

	// FindTopicByID retrieves a topic (with posts) by its forum topic id.
	// Returns ENOTFOUND if the topic does not exist.
	FindTopicByID(ctx context.Context, topicID int) (*Topic, error)

	// FindTopics retrieves topics matching the filter, posts included.
	FindTopics(ctx context.Context, filter TopicFilter) ([]*Topic, error)
}

// TopicFilter represents a filter for FindTopics.
type TopicFilter struct {
	Section *string
	Author  *string

	Offset int
	Limit  int
}

// WikiPageService manages wiki pages in the dataset store.
type WikiPageService interface {
	// CreateWikiPage stores a wiki page record.
	CreateWikiPage(ctx context.Context, page *WikiPage) error

	// FindWikiPageByTitle retrieves a page by its exact title.
	// Returns ENOTFOUND if the page does not exist.
	FindWikiPageByTitle(ctx context.Context, title string) (*WikiPage, error)

	// CountWikiPages returns the number of stored pages.
	CountWikiPages(ctx context.Context) (int, error)
}

// ImageService manages image references in the dataset store.
type ImageService interface {
	// CreateImage stores an image reference.
	CreateImage(ctx context.Context, ref *ImageRef) error

	// FindImages retrieves all stored references ordered by name.
	FindImages(ctx context.Context) ([]*ImageRef, error)
}
