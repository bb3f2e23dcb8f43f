package forage

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// ImageRef is one unique image referenced by the archive, either as a direct
// archive entry or as an img element inside a saved page.
type ImageRef struct {
	// Name is the normalized image name used for global deduplication.
	Name string `json:"image_name"`

	// Extension is the original file extension, lowercased, including the
	// leading dot. May be empty.
	Extension string `json:"extension"`

	// URL is the canonical download location reconstructed from Name and
	// Extension.
	URL string `json:"url"`

	// Src is the raw source path as it appeared in the archive or markup.
	Src string `json:"src"`

	Alt   string `json:"alt"`
	Title string `json:"title"`

	// SourceFile names the page the reference was found in, or
	// "direct_file" for direct archive entries.
	SourceFile string `json:"source_file"`
}

// ImageScanner extracts image references from the raw HTML of a saved page.
// References whose normalized name was already recorded on the run are
// dropped; first occurrence wins.
type ImageScanner interface {
	ScanImages(html, sourceFile string, run *Run) ([]ImageRef, error)
}

var sizePrefixRE = regexp.MustCompile(`^\d+px-`)

// CleanImageName normalizes an image path or filename to the bare image
// name: base name only, URL escapes decoded, extension removed, and any
// thumbnail size prefix (e.g. "32px-") stripped.
func CleanImageName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if unescaped, err := url.QueryUnescape(base); err == nil {
		base = unescaped
	}
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return sizePrefixRE.ReplaceAllString(base, "")
}

// ImageExtension returns the lowercased file extension of an image path,
// including the leading dot. Returns "" when the path has no extension.
func ImageExtension(src string) string {
	return strings.ToLower(path.Ext(strings.ReplaceAll(src, "\\", "/")))
}

// ImageURL builds the canonical download URL for a normalized image name.
func ImageURL(baseURL, name, extension string) string {
	return baseURL + name + extension
}
