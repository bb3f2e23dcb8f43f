package goquery

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

var (
	newlineRunRE = regexp.MustCompile(`\n+`)
	spaceRunRE   = regexp.MustCompile(` +`)
)

// NormalizeText converts raw extracted text into display text: runs of line
// breaks collapse to one newline, runs of spaces collapse to one space, HTML
// entities decode to their literal characters, and the result is trimmed.
//
// This pass runs exactly once per page, after table nodes have been replaced
// by placeholder tokens and before the rendered tables are substituted back,
// so table alignment padding is never re-normalized.
func NormalizeText(s string) string {
	s = newlineRunRE.ReplaceAllString(s, "\n")
	s = spaceRunRE.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// textWithSeparator returns the visible text of the selection with every
// text node joined by sep, preserving document order.
func textWithSeparator(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, sep)
}

// collectText appends the data of every text node under n, in document order.
func collectText(n *xhtml.Node, parts *[]string) {
	if n.Type == xhtml.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
