package crawl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/skowalczyk/forage"
)

var (
	_ forage.LinkFilter = (*WikiLanguageFilter)(nil)
	_ forage.LinkFilter = (*ForumMediaFilter)(nil)
)

// wikiLanguages are the language codes of translated wiki page variants.
// Only the untranslated pages are worth archiving.
var wikiLanguages = []string{
	"cs", "da", "de", "es", "fr", "hu", "it", "ja", "ko", "ms",
	"nl", "pl", "pt-br", "pt-pt", "ru", "sv", "tr", "uk", "vi",
	"zh", "zh-tw",
}

// WikiLanguageFilter skips links to language-variant wiki pages. The wiki
// appends a language code to the page path ("/Iron_plate/de"), and special
// pages carry the suffixed title in the query string instead.
type WikiLanguageFilter struct {
	pathRes  []*regexp.Regexp
	anyRes   []*regexp.Regexp
	parenRes []*regexp.Regexp
}

// NewWikiLanguageFilter creates a filter over the fixed language code list.
func NewWikiLanguageFilter() *WikiLanguageFilter {
	f := &WikiLanguageFilter{}
	for _, lang := range wikiLanguages {
		quoted := regexp.QuoteMeta(lang)
		f.pathRes = append(f.pathRes, regexp.MustCompile(`/[^/]+/`+quoted+`$`))
		f.anyRes = append(f.anyRes, regexp.MustCompile(`/`+quoted+`(&|$|/)`))
		f.parenRes = append(f.parenRes, regexp.MustCompile(`\([^)]+\)/`+quoted))
	}
	return f
}

// Skip returns true if the URL points at a language-variant page.
func (f *WikiLanguageFilter) Skip(rawURL string) bool {
	decoded := strings.ReplaceAll(rawURL, "&amp;", "&")
	if unescaped, err := url.QueryUnescape(decoded); err == nil {
		decoded = unescaped
	}

	parsed, err := url.Parse(decoded)
	if err != nil {
		return false
	}

	for _, re := range f.pathRes {
		if re.MatchString(parsed.Path) {
			return true
		}
	}

	// Special pages carry the suffixed page title in the query string,
	// e.g. title=Special:WhatLinksHere/Iron_plate/de.
	if title := parsed.Query().Get("title"); title != "" {
		for _, lang := range wikiLanguages {
			if strings.HasSuffix(title, "/"+lang) {
				return true
			}
			if strings.Contains(title, "WhatLinksHere") && strings.Contains(title, "/"+lang) {
				return true
			}
			if strings.Contains(title, "RecentChangesLinked") && strings.Contains(title, "/"+lang) {
				return true
			}
		}
	}

	for i := range wikiLanguages {
		if f.anyRes[i].MatchString(decoded) {
			return true
		}
		if f.parenRes[i].MatchString(decoded) {
			return true
		}
	}

	return false
}

// forumMediaPatterns mark file downloads and media links a forum crawl
// should never follow.
var forumMediaPatterns = []string{
	"download/file.php",
	".jpg", ".jpeg", ".png", ".gif",
	".pdf", ".zip", ".rar", ".mp4",
}

// ForumMediaFilter skips forum attachment downloads and media files.
type ForumMediaFilter struct{}

// NewForumMediaFilter creates a ForumMediaFilter.
func NewForumMediaFilter() *ForumMediaFilter {
	return &ForumMediaFilter{}
}

// Skip returns true if the URL points at a download or media file.
func (f *ForumMediaFilter) Skip(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, pattern := range forumMediaPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
