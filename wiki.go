package forage

// TableFormat selects the textual rendering used for HTML tables embedded
// in wiki page content.
type TableFormat string

// Supported table renderings.
const (
	TableMarkdown TableFormat = "markdown"
	TableText     TableFormat = "text"
)

// WikiPage represents one saved wiki page: metadata plus the normalized body
// text with tables rendered back in at their original positions.
type WikiPage struct {
	// Title is the document title, verbatim (no suffix stripping).
	Title string `json:"title"`

	// Categories holds the visible text of every category link, in document
	// order. Duplicates are preserved.
	Categories []string `json:"categories"`

	// Links holds every same-site link with non-empty visible text,
	// excluding category links.
	Links []Link `json:"links"`

	// Content is the page body text. Tables appear as rendered blocks at
	// the positions they occupied in the source document.
	Content string `json:"-"`
}

// Link is a same-site link extracted from a wiki page.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// WikiExtractor produces a WikiPage record from the raw HTML of a saved
// wiki page.
type WikiExtractor interface {
	// ExtractPage parses the page and returns its record. There is no
	// partial-success path: it either returns a full record or an error,
	// and the caller skips the file.
	ExtractPage(html string) (*WikiPage, error)
}
