package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/skowalczyk/forage"
)

// Ensure ImageScanner implements forage.ImageScanner at compile time.
var _ forage.ImageScanner = (*ImageScanner)(nil)

// ImageScanner extracts image references from saved pages. Deduplication by
// normalized image name happens against the Run passed to ScanImages, so
// first occurrence wins globally across every page (and across direct
// archive entries scanned before the pages).
type ImageScanner struct {
	baseURL string
}

// NewImageScanner creates an ImageScanner. baseURL is the canonical image
// host prefix used to reconstruct download URLs
// (e.g. "https://wiki.example.com/images/").
func NewImageScanner(baseURL string) *ImageScanner {
	return &ImageScanner{baseURL: baseURL}
}

// ScanImages returns the image references in the page that have not been
// seen earlier in the run, in document order.
func (s *ImageScanner) ScanImages(html, sourceFile string, run *forage.Run) ([]forage.ImageRef, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, forage.Errorf(forage.EINVALID, "failed to parse HTML: %v", err)
	}

	var refs []forage.ImageRef

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		src = strings.TrimPrefix(strings.TrimSpace(src), "/")
		if src == "" {
			return
		}

		name := forage.CleanImageName(src)
		if !run.MarkImage(name) {
			return
		}

		ext := forage.ImageExtension(src)
		alt, _ := img.Attr("alt")
		title, _ := img.Attr("title")

		refs = append(refs, forage.ImageRef{
			Name:       name,
			Extension:  ext,
			URL:        forage.ImageURL(s.baseURL, name, ext),
			Src:        src,
			Alt:        alt,
			Title:      title,
			SourceFile: sourceFile,
		})
	})

	return refs, nil
}
