package slog

import (
	"log/slog"
	"time"

	"github.com/skowalczyk/forage"
)

// Ensure the decorators implement the extraction interfaces.
var (
	_ forage.TopicExtractor = (*LoggingTopicExtractor)(nil)
	_ forage.WikiExtractor  = (*LoggingWikiExtractor)(nil)
)

// LoggingTopicExtractor wraps a TopicExtractor with debug logging.
type LoggingTopicExtractor struct {
	next   forage.TopicExtractor
	logger *slog.Logger
}

// NewLoggingTopicExtractor creates a new LoggingTopicExtractor.
func NewLoggingTopicExtractor(next forage.TopicExtractor, logger *slog.Logger) *LoggingTopicExtractor {
	return &LoggingTopicExtractor{next: next, logger: logger}
}

// ExtractTopic delegates to the wrapped extractor and logs the operation.
func (e *LoggingTopicExtractor) ExtractTopic(html string) (topic *forage.Topic, err error) {
	defer func(begin time.Time) {
		posts := 0
		if topic != nil {
			posts = len(topic.Posts)
		}
		e.logger.Debug("topic extraction",
			"posts", posts,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractTopic(html)
}

// LoggingWikiExtractor wraps a WikiExtractor with debug logging.
type LoggingWikiExtractor struct {
	next   forage.WikiExtractor
	logger *slog.Logger
}

// NewLoggingWikiExtractor creates a new LoggingWikiExtractor.
func NewLoggingWikiExtractor(next forage.WikiExtractor, logger *slog.Logger) *LoggingWikiExtractor {
	return &LoggingWikiExtractor{next: next, logger: logger}
}

// ExtractPage delegates to the wrapped extractor and logs the operation.
func (e *LoggingWikiExtractor) ExtractPage(html string) (page *forage.WikiPage, err error) {
	defer func(begin time.Time) {
		title := ""
		if page != nil {
			title = page.Title
		}
		e.logger.Debug("wiki extraction",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractPage(html)
}
