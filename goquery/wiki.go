package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skowalczyk/forage"
)

// categoryFragment identifies category-namespace links on MediaWiki pages.
const categoryFragment = "Category:"

// Ensure WikiExtractor implements forage.WikiExtractor at compile time.
var _ forage.WikiExtractor = (*WikiExtractor)(nil)

// WikiExtractor extracts page records from saved MediaWiki pages.
type WikiExtractor struct {
	format forage.TableFormat
}

// WikiOption configures a WikiExtractor.
type WikiOption func(*WikiExtractor)

// WithTableFormat sets the rendering used for embedded tables.
// Defaults to markdown.
func WithTableFormat(format forage.TableFormat) WikiOption {
	return func(e *WikiExtractor) {
		e.format = format
	}
}

// NewWikiExtractor creates a new WikiExtractor.
func NewWikiExtractor(opts ...WikiOption) *WikiExtractor {
	e := &WikiExtractor{format: forage.TableMarkdown}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractPage parses a wiki page and returns its record: title, categories,
// same-site links, and the normalized body text with each table rendered
// back in at the position it occupied.
func (e *WikiExtractor) ExtractPage(html string) (*forage.WikiPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, forage.Errorf(forage.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &forage.WikiPage{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())

		if strings.Contains(href, categoryFragment) {
			if text != "" {
				page.Categories = append(page.Categories, text)
			}
			return
		}
		if isInternalLink(href) && text != "" {
			page.Links = append(page.Links, forage.Link{Text: text, Href: href})
		}
	})

	page.Content = e.extractContent(doc)
	return page, nil
}

// isInternalLink reports whether href points at the same site: non-empty,
// not absolute, and not a fragment.
func isInternalLink(href string) bool {
	if href == "" {
		return false
	}
	if strings.HasPrefix(href, "http") || strings.HasPrefix(href, "//") {
		return false
	}
	return !strings.HasPrefix(href, "#")
}

// extractContent produces the page body text. Tables are replaced by
// placeholder tokens before text extraction, the text is normalized once,
// and each token is then substituted with its rendered table surrounded by
// blank lines. An empty rendering removes its token silently.
func (e *WikiExtractor) extractContent(doc *goquery.Document) string {
	doc.Find("script, style").Remove()

	var rendered []string
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rendered = append(rendered, GridFromTable(table).Render(e.format))
		table.ReplaceWithHtml("<div>" + tablePlaceholder(len(rendered)) + "</div>")
	})

	text := NormalizeText(textWithSeparator(doc.Selection, "\n"))

	for i, block := range rendered {
		token := tablePlaceholder(i + 1)
		if strings.TrimSpace(block) == "" {
			text = strings.Replace(text, token, "", 1)
			continue
		}
		text = strings.Replace(text, token, "\n\n"+block+"\n\n", 1)
	}

	return strings.TrimSpace(text)
}
