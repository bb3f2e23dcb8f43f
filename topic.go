package forage

// Topic represents one forum thread page: thread-level metadata plus every
// post visible on the page, in document order.
type Topic struct {
	Title     string `json:"title"`
	TopicID   *int   `json:"topic_id"`
	PostID    *int   `json:"post_id"`
	URL       string `json:"url"`
	Section   string `json:"section"`
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
	AuthorID  *int   `json:"author_id"`

	// Posts holds every recognized post block in document order, which is
	// the chronological display order on the page. May be empty; whether an
	// empty topic is kept or skipped is a caller policy.
	Posts []Post `json:"posts"`
}

// Post represents one message within a topic.
type Post struct {
	PostID   *int   `json:"post_id"`
	Author   string `json:"author"`
	AuthorID *int   `json:"author_id"`

	// Date is the machine-readable datetime attribute of the post's time
	// element, verbatim. It is not parsed into a calendar type.
	Date string `json:"date"`

	// Content is the post's visible text with quoted blocks removed.
	Content string `json:"content"`

	// Quotes holds quoted blocks that were excised from Content,
	// in document order.
	Quotes []Quote `json:"quotes"`
}

// Quote represents an embedded citation of another post inside a post body.
type Quote struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// TopicExtractor produces a Topic record from the raw HTML of a saved forum
// topic page.
type TopicExtractor interface {
	// ExtractTopic parses the page and returns its topic record. Missing
	// fields yield zero values, never an error; only an unparseable
	// document fails.
	ExtractTopic(html string) (*Topic, error)
}
