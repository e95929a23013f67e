package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"paperlens/internal/tracker"
)

// DBLPPageSource extracts paper entries from a saved DBLP author or
// listing page. Entries are the `li.entry` publication items; their DOM
// ids double as stable paper ids.
type DBLPPageSource struct {
	path string
	cb   func()
}

// NewDBLPPageSource creates a source over a saved HTML page.
func NewDBLPPageSource(path string) *DBLPPageSource {
	return &DBLPPageSource{path: path}
}

// IsMatch reports whether the source handles the given location.
func (s *DBLPPageSource) IsMatch(url string) bool {
	return strings.Contains(url, "dblp.org/pid/") || strings.HasSuffix(url, ".html")
}

// Papers parses the page and returns its publication entries. Entries
// missing an id or title are skipped; one bad entry never aborts the
// rest.
func (s *DBLPPageSource) Papers() ([]tracker.Paper, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	var papers []tracker.Paper
	doc.Find("li.entry").Each(func(_ int, sel *goquery.Selection) {
		id, ok := sel.Attr("id")
		if !ok || id == "" {
			return
		}

		title := strings.TrimSpace(sel.Find("span.title").First().Text())
		title = strings.TrimSuffix(title, ".")
		if title == "" {
			return
		}

		venue := strings.TrimSpace(sel.Find(`span[itemprop="isPartOf"] span[itemprop="name"]`).First().Text())
		year := strings.TrimSpace(sel.Find(`span[itemprop="datePublished"]`).First().Text())

		papers = append(papers, tracker.Paper{
			ID:    id,
			Title: title,
			Year:  year,
			Venue: venue,
			// DBLP only lists published work, so venue-less entries
			// are still worth a fallback lookup.
			LikelyPublished: true,
			Element:         id,
		})
	})

	return papers, nil
}

// ObserveChanges stores the change callback; saved pages never push
// changes, so Notify drives re-scans manually.
func (s *DBLPPageSource) ObserveChanges(cb func()) {
	s.cb = cb
}

// Notify invokes the registered change callback, if any.
func (s *DBLPPageSource) Notify() {
	if s.cb != nil {
		s.cb()
	}
}

// Disconnect drops the change callback.
func (s *DBLPPageSource) Disconnect() {
	s.cb = nil
}
