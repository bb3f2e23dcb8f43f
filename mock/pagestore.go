package mock

import (
	"context"

	"github.com/skowalczyk/forage"
)

var _ forage.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of forage.PageStore.
type PageStore struct {
	SavePageFn func(ctx context.Context, url string, body []byte) (string, error)
	HasFn      func(name string) bool
}

func (s *PageStore) SavePage(ctx context.Context, url string, body []byte) (string, error) {
	return s.SavePageFn(ctx, url, body)
}

func (s *PageStore) Has(name string) bool {
	if s.HasFn == nil {
		return false
	}
	return s.HasFn(name)
}
