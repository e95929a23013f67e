// Package tracker maintains the per-page set of discovered papers, their
// venue classifications, and processed/marked state, orchestrating the
// matcher, the enrichment queue, and the fallback lookup service.
package tracker

// Handle is an opaque reference to the page element a paper was extracted
// from. The tracker only ever passes handles to a MarkerStore; it never
// inspects them. Handles must be comparable.
type Handle any

// Paper is one raw entry reported by a source. ID must be stable and
// unique per logical paper within a page session.
type Paper struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Year            string `json:"year,omitempty"`
	Venue           string `json:"venue,omitempty"`
	LikelyPublished bool   `json:"likely_published,omitempty"`
	Element         Handle `json:"-"`
}

// Source supplies paper entries for one hosting site. Concrete adapters
// live outside the tracker; it depends only on this interface.
type Source interface {
	// IsMatch reports whether this source handles the given page URL.
	IsMatch(url string) bool

	// Papers extracts the current paper entries from the page.
	Papers() ([]Paper, error)

	// ObserveChanges registers a callback invoked whenever the page
	// content changes. The observation mechanism is the source's concern.
	ObserveChanges(func())

	// Disconnect stops change observation.
	Disconnect()
}

// MarkerStore is the external idempotency channel: a processed marker
// attached to the element itself, which can outlive the tracker's
// in-memory state across resets.
type MarkerStore interface {
	IsMarked(el Handle) bool
	Mark(el Handle)
	Unmark(el Handle)
}

// MemoryMarkers is a MarkerStore backed by a map, for tests and headless
// runs where no real page elements exist.
type MemoryMarkers struct {
	marked map[Handle]struct{}
}

// NewMemoryMarkers creates an empty marker store.
func NewMemoryMarkers() *MemoryMarkers {
	return &MemoryMarkers{marked: make(map[Handle]struct{})}
}

// IsMarked reports whether el carries a processed marker.
func (m *MemoryMarkers) IsMarked(el Handle) bool {
	if el == nil {
		return false
	}
	_, ok := m.marked[el]
	return ok
}

// Mark attaches a processed marker to el.
func (m *MemoryMarkers) Mark(el Handle) {
	if el == nil {
		return
	}
	m.marked[el] = struct{}{}
}

// Unmark removes the processed marker from el.
func (m *MemoryMarkers) Unmark(el Handle) {
	if el == nil {
		return
	}
	delete(m.marked, el)
}
