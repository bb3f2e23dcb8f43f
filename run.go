package forage

// Run carries state scoped to a single pipeline invocation. The only state
// today is the global image-name deduplication set shared between the direct
// archive pass and the HTML reference pass. Scoping it to a Run (rather than
// a package-level global) lets tests and callers execute extractions in
// isolation.
//
// Run is not safe for concurrent use; the batch pipelines are single-pass
// and synchronous.
type Run struct {
	seenImages map[string]struct{}
}

// NewRun returns a fresh Run with an empty deduplication set.
func NewRun() *Run {
	return &Run{seenImages: make(map[string]struct{})}
}

// MarkImage records a normalized image name and reports whether this is its
// first occurrence in the run. Later duplicates return false and are dropped
// by callers.
func (r *Run) MarkImage(name string) bool {
	if _, ok := r.seenImages[name]; ok {
		return false
	}
	r.seenImages[name] = struct{}{}
	return true
}

// SeenImage reports whether the name has already been recorded.
func (r *Run) SeenImage(name string) bool {
	_, ok := r.seenImages[name]
	return ok
}

// ImageCount returns the number of unique image names recorded so far.
func (r *Run) ImageCount() int {
	return len(r.seenImages)
}
