package mock

import (
	"context"

	"github.com/skowalczyk/forage"
)

var _ forage.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of forage.PageSource.
type PageSource struct {
	ListFn func(ctx context.Context) ([]string, error)
	ReadFn func(ctx context.Context, name string) (string, error)
}

func (s *PageSource) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}

func (s *PageSource) Read(ctx context.Context, name string) (string, error) {
	return s.ReadFn(ctx, name)
}

var _ forage.ImageEntrySource = (*ImageEntrySource)(nil)

// ImageEntrySource is a mock implementation of forage.ImageEntrySource.
type ImageEntrySource struct {
	PageSource
	ImageEntriesFn func(ctx context.Context) ([]string, error)
}

func (s *ImageEntrySource) ImageEntries(ctx context.Context) ([]string, error) {
	return s.ImageEntriesFn(ctx)
}
