package forage

// Converter converts HTML fragments to Markdown. Used for the optional
// markdown rendering of forum post bodies; wiki tables are rendered by the
// table normalizer instead.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is sanitized before conversion.
	Convert(html string) (string, error)
}
