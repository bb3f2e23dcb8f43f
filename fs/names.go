// Package fs provides file-based sources and writers for the harvest
// pipelines: archive enumeration (directory and zip), per-record JSON and
// text artifacts, and flat CSV indexes.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	topicFileRE  = regexp.MustCompile(`_viewtopic\.php_t_(\d+)`)
	postFileRE   = regexp.MustCompile(`_viewtopic\.php_p_(\d+)`)
	unsafeWordRE = regexp.MustCompile(`[^\w\-.]`)
	unsafePathRE = regexp.MustCompile(`[\\/*?:"<>|]`)
)

// TopicFileName derives the output JSON filename for a saved forum page.
// Pages saved under their topic or post id keep that id
// (topic_<id>.json / post_<id>.json); anything else falls back to a
// sanitized forum_<name>.json.
func TopicFileName(sourceName string) string {
	if m := topicFileRE.FindStringSubmatch(sourceName); m != nil {
		return fmt.Sprintf("topic_%s.json", m[1])
	}
	if m := postFileRE.FindStringSubmatch(sourceName); m != nil {
		return fmt.Sprintf("post_%s.json", m[1])
	}
	return fmt.Sprintf("forum_%s.json", unsafeWordRE.ReplaceAllString(sourceName, "_"))
}

// ArtifactFileName derives the output text filename for a saved wiki page:
// base name, leading underscore and .html extension dropped, filesystem-
// unsafe characters replaced.
func ArtifactFileName(sourceName string) string {
	base := path.Base(strings.ReplaceAll(sourceName, "\\", "/"))
	base = strings.TrimPrefix(base, "_")
	base = strings.TrimSuffix(base, ".html")
	return unsafePathRE.ReplaceAllString(base, "_") + ".txt"
}

// PageFileName derives the saved filename for a fetched page URL: the path
// with slashes replaced by underscores, query parameters appended, unsafe
// characters replaced, a leading underscore prefix, and an .html extension.
// ArtifactFileName and TopicFileName reverse this convention.
func PageFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	name := strings.Trim(u.Path, "/")
	if name == "" {
		name = "index"
	}
	name = strings.ReplaceAll(name, "/", "_")

	if u.RawQuery != "" {
		query := strings.NewReplacer("&", "_", "=", "_").Replace(u.RawQuery)
		name = name + "_" + query
	}

	name = unsafePathRE.ReplaceAllString(name, "_")
	return "_" + name + ".html", nil
}
