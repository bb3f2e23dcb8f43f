package mock

import "github.com/skowalczyk/forage"

var _ forage.TopicExtractor = (*TopicExtractor)(nil)

// TopicExtractor is a mock implementation of forage.TopicExtractor.
type TopicExtractor struct {
	ExtractTopicFn func(html string) (*forage.Topic, error)
}

func (e *TopicExtractor) ExtractTopic(html string) (*forage.Topic, error) {
	return e.ExtractTopicFn(html)
}

var _ forage.WikiExtractor = (*WikiExtractor)(nil)

// WikiExtractor is a mock implementation of forage.WikiExtractor.
type WikiExtractor struct {
	ExtractPageFn func(html string) (*forage.WikiPage, error)
}

func (e *WikiExtractor) ExtractPage(html string) (*forage.WikiPage, error) {
	return e.ExtractPageFn(html)
}

var _ forage.ImageScanner = (*ImageScanner)(nil)

// ImageScanner is a mock implementation of forage.ImageScanner.
type ImageScanner struct {
	ScanImagesFn func(html, sourceFile string, run *forage.Run) ([]forage.ImageRef, error)
}

func (s *ImageScanner) ScanImages(html, sourceFile string, run *forage.Run) ([]forage.ImageRef, error) {
	return s.ScanImagesFn(html, sourceFile, run)
}
