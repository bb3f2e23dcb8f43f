// Package goquery implements the forage extraction interfaces on top of
// goquery CSS selection. It contains the structural extractors for forum
// topic pages and wiki pages, the table normalizer, and the image reference
// scanner.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skowalczyk/forage"
)

// profileLinkFragment identifies profile anchors on phpBB pages.
const profileLinkFragment = "memberlist.php?mode=viewprofile&u="

var (
	topicParamRE = regexp.MustCompile(`t=(\d+)`)
	postParamRE  = regexp.MustCompile(`p=(\d+)`)
	userParamRE  = regexp.MustCompile(`u=(\d+)`)
	postBlockRE  = regexp.MustCompile(`p(\d+)`)
)

// Ensure ForumExtractor implements forage.TopicExtractor at compile time.
var _ forage.TopicExtractor = (*ForumExtractor)(nil)

// ForumExtractor extracts topic records from saved phpBB topic pages.
type ForumExtractor struct {
	titleSuffix string
	converter   forage.Converter
}

// ForumOption configures a ForumExtractor.
type ForumOption func(*ForumExtractor)

// WithTitleSuffix sets a trailing site-name suffix that is stripped from
// document titles (e.g. " - Factorio Forums").
func WithTitleSuffix(suffix string) ForumOption {
	return func(e *ForumExtractor) {
		e.titleSuffix = suffix
	}
}

// WithConverter renders post bodies through the converter (typically to
// Markdown) instead of extracting plain text. Posts whose bodies fail to
// convert fall back to plain text.
func WithConverter(c forage.Converter) ForumOption {
	return func(e *ForumExtractor) {
		e.converter = c
	}
}

// NewForumExtractor creates a new ForumExtractor.
func NewForumExtractor(opts ...ForumOption) *ForumExtractor {
	e := &ForumExtractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractTopic parses a forum topic page and returns its record. Missing
// tags and attributes leave the corresponding fields at their zero values;
// only an unparseable document returns an error.
func (e *ForumExtractor) ExtractTopic(html string) (*forage.Topic, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, forage.Errorf(forage.EINVALID, "failed to parse HTML: %v", err)
	}

	topic := &forage.Topic{}
	e.extractTopicInfo(doc, topic)
	topic.Posts = e.extractPosts(doc)
	return topic, nil
}

// extractTopicInfo fills thread-level metadata from the page head.
func (e *ForumExtractor) extractTopicInfo(doc *goquery.Document, topic *forage.Topic) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if e.titleSuffix != "" {
		title = strings.TrimSpace(strings.ReplaceAll(title, e.titleSuffix, ""))
	}
	topic.Title = title

	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		topic.URL = content
		topic.TopicID = matchInt(topicParamRE, content)
		topic.PostID = matchInt(postParamRE, content)
	}

	topic.Section, _ = doc.Find(`meta[property="article:section"]`).First().Attr("content")
	topic.Author, _ = doc.Find(`meta[property="article:author"]`).First().Attr("content")
	topic.Timestamp, _ = doc.Find(`meta[property="article:published_time"]`).First().Attr("content")

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, profileLinkFragment) {
			return true
		}
		topic.AuthorID = matchInt(userParamRE, href)
		return false
	})
}

// extractPosts returns every recognized post block in document order.
func (e *ForumExtractor) extractPosts(doc *goquery.Document) []forage.Post {
	var posts []forage.Post

	doc.Find("div.post").Each(func(_ int, block *goquery.Selection) {
		post := forage.Post{}

		if id, ok := block.Attr("id"); ok {
			post.PostID = matchInt(postBlockRE, id)
		}

		author := block.Find("a.username").First()
		if author.Length() > 0 {
			post.Author = strings.TrimSpace(author.Text())
			if href, ok := author.Attr("href"); ok {
				post.AuthorID = matchInt(userParamRE, href)
			}
		}

		post.Date, _ = block.Find("time").First().Attr("datetime")

		content := block.Find("div.content").First()
		if content.Length() > 0 {
			post.Quotes = extractQuotes(content)
			post.Content = e.renderContent(content)
		}

		posts = append(posts, post)
	})

	return posts
}

// extractQuotes collects quoted blocks inside a post's content region and
// removes them from the tree, so the surrounding post text never includes
// quoted material.
func extractQuotes(content *goquery.Selection) []forage.Quote {
	var quotes []forage.Quote

	content.Find("blockquote").Each(func(_ int, block *goquery.Selection) {
		quote := forage.Quote{
			Author:  strings.TrimSpace(block.Find("cite").First().Text()),
			Content: strings.TrimSpace(block.Find("div.quote-content").First().Text()),
		}
		quotes = append(quotes, quote)
		block.Remove()
	})

	return quotes
}

// renderContent produces the body text for a post content region, using the
// configured converter when one is set and plain text otherwise.
func (e *ForumExtractor) renderContent(content *goquery.Selection) string {
	if e.converter == nil {
		return joinedText(content)
	}
	html, err := content.Html()
	if err != nil {
		return joinedText(content)
	}
	rendered, err := e.converter.Convert(html)
	if err != nil {
		return joinedText(content)
	}
	return strings.TrimSpace(rendered)
}

// joinedText returns the selection's visible text with all runs of
// whitespace collapsed to single spaces. Text nodes are joined with spaces
// so words in adjacent elements do not fuse.
func joinedText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(textWithSeparator(sel, " ")), " ")
}

// matchInt applies a capture-group regexp to s and returns the first group
// parsed as an integer, or nil when there is no match.
func matchInt(re *regexp.Regexp, s string) *int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
