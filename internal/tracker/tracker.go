package tracker

import (
	"context"
	"log"
	"sync"

	"paperlens/internal/catalog"
	"paperlens/internal/lookup"
	"paperlens/internal/match"
	"paperlens/internal/queue"
)

// VenueSource records where a paper's venue string came from.
type VenueSource string

const (
	VenueSourcePage    VenueSource = "page"
	VenueSourceComment VenueSource = "comment"
	VenueSourceDBLP    VenueSource = "dblp"
	VenueSourceUnknown VenueSource = "unknown"
)

// Record is the tracker's view of one discovered paper. The match result
// is set at classification and replaced only by a successful enrichment;
// Processed flips true exactly once, when the caller confirms rendering.
type Record struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Year        string       `json:"year,omitempty"`
	Venue       string       `json:"venue,omitempty"`
	VenueSource VenueSource  `json:"venue_source"`
	Match       match.Result `json:"match"`
	Processed   bool         `json:"processed"`
	LookupError string       `json:"lookup_error,omitempty"`
	Element     Handle       `json:"-"`
}

// Statistics is a rank histogram over all tracked records. The four
// buckets partition the set exactly: A+B+C+Unknown == Total.
type Statistics struct {
	Total   int `json:"total"`
	A       int `json:"a"`
	B       int `json:"b"`
	C       int `json:"c"`
	Unknown int `json:"unknown"`
}

// Percentages returns each bucket's share of the total, in [0,100].
// All zeros when the tracker is empty.
func (s Statistics) Percentages() map[string]float64 {
	out := map[string]float64{"A": 0, "B": 0, "C": 0, "unknown": 0}
	if s.Total == 0 {
		return out
	}
	out["A"] = float64(s.A) / float64(s.Total) * 100
	out["B"] = float64(s.B) / float64(s.Total) * 100
	out["C"] = float64(s.C) / float64(s.Total) * 100
	out["unknown"] = float64(s.Unknown) / float64(s.Total) * 100
	return out
}

// Tracker is the processing core. All map state is guarded by one mutex;
// enrichment tasks re-enter through applyEnrichment, which re-checks the
// queue epoch before touching anything.
type Tracker struct {
	mu      sync.Mutex
	matcher *match.Matcher
	source  Source
	markers MarkerStore

	lookups *lookup.Service
	queue   *queue.Queue
	enrich  bool

	records map[string]*Record
	order   []string
	seen    map[string]struct{}

	ctx        context.Context
	onEnriched func(id string)
	logf       func(format string, args ...any)
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithLookup enables fallback enrichment through the given service and
// queue.
func WithLookup(svc *lookup.Service, q *queue.Queue) TrackerOption {
	return func(t *Tracker) {
		t.lookups = svc
		t.queue = q
		t.enrich = svc != nil && q != nil
	}
}

// WithMarkers sets the external marker store.
func WithMarkers(m MarkerStore) TrackerOption {
	return func(t *Tracker) { t.markers = m }
}

// WithContext sets the context enrichment lookups run under.
func WithContext(ctx context.Context) TrackerOption {
	return func(t *Tracker) { t.ctx = ctx }
}

// WithOnEnriched registers a callback invoked after an enrichment result
// (success or failure) has been applied to a record.
func WithOnEnriched(fn func(id string)) TrackerOption {
	return func(t *Tracker) { t.onEnriched = fn }
}

// WithLogf overrides where skipped-entry and enrichment failures are
// logged.
func WithLogf(logf func(format string, args ...any)) TrackerOption {
	return func(t *Tracker) { t.logf = logf }
}

// New creates a tracker over a matcher and a source.
func New(matcher *match.Matcher, source Source, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		matcher: matcher,
		source:  source,
		markers: NewMemoryMarkers(),
		records: make(map[string]*Record),
		seen:    make(map[string]struct{}),
		ctx:     context.Background(),
		logf:    log.Printf,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ProcessCurrentPage pulls the source's current entries, classifies and
// adds every entry not seen before, and schedules fallback enrichment for
// eligible ones. Safe to call repeatedly: known and marked entries are
// skipped, so the result set size is stable across calls against an
// unchanged page. One malformed entry never aborts its siblings.
func (t *Tracker) ProcessCurrentPage() (added int, err error) {
	papers, err := t.source.Papers()
	if err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range papers {
		if p.ID == "" {
			t.logf("tracker: skipping entry with empty id (title %q)", p.Title)
			continue
		}
		if t.isProcessedLocked(p.ID, p.Element) {
			continue
		}
		if _, known := t.records[p.ID]; known {
			continue
		}

		rec := t.classify(p)
		t.records[p.ID] = rec
		t.order = append(t.order, p.ID)
		added++

		if t.eligibleForEnrichment(p) {
			t.enqueueLookupLocked(rec)
		}
	}

	return added, nil
}

// classify builds a record with its initial synchronous classification.
func (t *Tracker) classify(p Paper) *Record {
	src := VenueSourceUnknown
	if p.Venue != "" {
		src = VenueSourcePage
	}
	return &Record{
		ID:          p.ID,
		Title:       p.Title,
		Year:        p.Year,
		Venue:       p.Venue,
		VenueSource: src,
		Match:       t.matcher.Match(p.Venue),
		Element:     p.Element,
	}
}

// eligibleForEnrichment gates fallback lookups: only entries with no
// venue string at all, a usable title, and the source's published signal.
func (t *Tracker) eligibleForEnrichment(p Paper) bool {
	return t.enrich && p.Venue == "" && p.Title != "" && p.LikelyPublished
}

// enqueueLookupLocked schedules one fallback lookup for rec, unless one
// is already in flight for the same id. Caller holds the lock.
func (t *Tracker) enqueueLookupLocked(rec *Record) {
	if t.queue.IsInFlight(rec.ID) {
		return
	}
	t.queue.AddInFlight(rec.ID)

	id, title := rec.ID, rec.Title
	t.queue.Enqueue(func(epoch uint64) {
		defer t.queue.RemoveInFlight(id, epoch)

		res := t.lookups.QueryByTitle(t.ctx, title)

		if t.applyEnrichment(id, epoch, res) && t.onEnriched != nil {
			t.onEnriched(id)
		}
	})
}

// applyEnrichment folds a lookup result into the record, reporting
// whether it was applied. The captured epoch is re-checked under the
// tracker lock: a result made stale by a reset never mutates a record,
// including one a newer scan re-added under the same id. Failures keep
// the prior classification and surface through LookupError.
func (t *Tracker) applyEnrichment(id string, epoch uint64, res lookup.Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.queue.Stale(epoch) {
		return false
	}
	rec, ok := t.records[id]
	if !ok {
		return false
	}

	if res.Error != "" {
		rec.LookupError = res.Error
		t.logf("tracker: lookup for %q failed: %s", id, res.Error)
		return true
	}
	rec.LookupError = ""
	if !res.Found || res.Venue == "" {
		return true
	}

	rec.Venue = res.Venue
	rec.VenueSource = VenueSourceDBLP
	if rec.Year == "" && res.Year != "" {
		rec.Year = res.Year
	}
	rec.Match = t.matcher.Match(res.Venue)
	return true
}

// IsProcessed reports whether the entry was already processed, checking
// the external marker first: it is authoritative across tracker resets,
// and the in-memory set is synchronized from it on read.
func (t *Tracker) IsProcessed(id string, el Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isProcessedLocked(id, el)
}

func (t *Tracker) isProcessedLocked(id string, el Handle) bool {
	if t.markers.IsMarked(el) {
		t.seen[id] = struct{}{}
		return true
	}
	_, ok := t.seen[id]
	return ok
}

// MarkProcessed records that the entry's badge has been rendered, setting
// both idempotency channels. Unknown ids are ignored.
func (t *Tracker) MarkProcessed(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[id]
	if !ok {
		return
	}
	rec.Processed = true
	t.seen[id] = struct{}{}
	t.markers.Mark(rec.Element)
}

// Reset wipes the in-memory result and idempotency sets and cancels any
// in-flight enrichment effects. When clearExternalMarkers is true the
// external markers are stripped too, so a subsequent scan reprocesses
// everything; when false, marked entries stay excluded from future scans
// even though the in-memory state is gone.
func (t *Tracker) Reset(clearExternalMarkers bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if clearExternalMarkers {
		for _, rec := range t.records {
			t.markers.Unmark(rec.Element)
		}
	}

	t.records = make(map[string]*Record)
	t.order = nil
	t.seen = make(map[string]struct{})

	if t.queue != nil {
		t.queue.Clear()
	}
}

// Records returns a snapshot of all tracked records in discovery order.
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Record, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.records[id])
	}
	return out
}

// Len returns the number of tracked records.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Statistics returns the rank histogram over all tracked records.
func (t *Tracker) Statistics() Statistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	var s Statistics
	for _, rec := range t.records {
		s.Total++
		if !rec.Match.Matched {
			s.Unknown++
			continue
		}
		switch rec.Match.Entry.Rank {
		case catalog.RankA:
			s.A++
		case catalog.RankB:
			s.B++
		case catalog.RankC:
			s.C++
		default:
			s.Unknown++
		}
	}
	return s
}

// PapersByRank returns records whose matched rank equals rank, in
// discovery order. A nil rank selects the unmatched subset.
func (t *Tracker) PapersByRank(rank *catalog.Rank) []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Record
	for _, id := range t.order {
		rec := t.records[id]
		if rank == nil {
			if !rec.Match.Matched {
				out = append(out, *rec)
			}
			continue
		}
		if rec.Match.Matched && rec.Match.Entry.Rank == *rank {
			out = append(out, *rec)
		}
	}
	return out
}

// Start begins observing the source for page changes, reprocessing on
// every notification. Errors during reprocessing are logged and the
// observation continues.
func (t *Tracker) Start() {
	t.source.ObserveChanges(func() {
		if _, err := t.ProcessCurrentPage(); err != nil {
			t.logf("tracker: reprocessing page: %v", err)
		}
	})
}

// Stop disconnects change observation. In-flight enrichments finish but
// queued ones can be discarded by a following Reset.
func (t *Tracker) Stop() {
	t.source.Disconnect()
}
