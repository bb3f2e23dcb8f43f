package mock

import (
	"context"

	"github.com/skowalczyk/forage"
)

var _ forage.TopicWriter = (*TopicWriter)(nil)

// TopicWriter is a mock implementation of forage.TopicWriter.
type TopicWriter struct {
	WriteTopicFn func(ctx context.Context, sourceName string, topic *forage.Topic) (string, error)
}

func (w *TopicWriter) WriteTopic(ctx context.Context, sourceName string, topic *forage.Topic) (string, error) {
	return w.WriteTopicFn(ctx, sourceName, topic)
}

var _ forage.WikiPageWriter = (*WikiPageWriter)(nil)

// WikiPageWriter is a mock implementation of forage.WikiPageWriter.
type WikiPageWriter struct {
	WritePageFn func(ctx context.Context, sourceName string, page *forage.WikiPage) (string, error)
}

func (w *WikiPageWriter) WritePage(ctx context.Context, sourceName string, page *forage.WikiPage) (string, error) {
	return w.WritePageFn(ctx, sourceName, page)
}

var _ forage.TopicIndex = (*TopicIndex)(nil)

// TopicIndex is a mock implementation of forage.TopicIndex.
type TopicIndex struct {
	AppendFn func(row forage.TopicIndexRow) error
}

func (i *TopicIndex) Append(row forage.TopicIndexRow) error {
	return i.AppendFn(row)
}

var _ forage.ImageIndex = (*ImageIndex)(nil)

// ImageIndex is a mock implementation of forage.ImageIndex.
type ImageIndex struct {
	AppendFn func(ref forage.ImageRef) error
}

func (i *ImageIndex) Append(ref forage.ImageRef) error {
	return i.AppendFn(ref)
}
