package match

import (
	"regexp"
	"sort"
	"strings"

	"paperlens/internal/catalog"
)

// Confidence describes how a match was obtained, ordered by specificity:
// exact > cleaned > partial > acronym > none.
type Confidence string

const (
	ConfidenceExact   Confidence = "exact"
	ConfidenceCleaned Confidence = "cleaned"
	ConfidencePartial Confidence = "partial"
	ConfidenceAcronym Confidence = "acronym"
	ConfidenceNone    Confidence = "none"
)

// Result is the outcome of one Match call. It is a value: produced fresh
// on every call and never mutated afterwards.
type Result struct {
	Matched       bool           `json:"matched"`
	Entry         *catalog.Entry `json:"entry,omitempty"`
	Confidence    Confidence     `json:"confidence"`
	OriginalVenue string         `json:"original_venue"`
	CleanedVenue  string         `json:"cleaned_venue"`
}

// partialTerm is one precompiled substring candidate for partial matching.
type partialTerm struct {
	re    *regexp.Regexp
	entry *catalog.Entry
}

// Matcher resolves raw venue strings against a catalog. It is stateless
// apart from the catalog and precompiled partial-match terms, so a single
// Matcher is safe for reuse across calls.
type Matcher struct {
	catalog *catalog.Catalog
	partial []partialTerm
}

// minAliasLen gates aliases out of partial matching: substrings shorter
// than this produce too many incidental hits.
const minAliasLen = 3

// NewMatcher builds a matcher over the catalog. Partial-match terms are
// abbreviations plus aliases of length >= 3, compiled as case-insensitive
// whole-word patterns and ordered longest first so specific terms win
// over generic ones.
func NewMatcher(c *catalog.Catalog) *Matcher {
	m := &Matcher{catalog: c}

	entries := c.Entries()
	type candidate struct {
		term  string
		entry *catalog.Entry
	}
	var cands []candidate
	for i := range entries {
		e := &entries[i]
		if e.Abbr != "" {
			cands = append(cands, candidate{e.Abbr, e})
		}
		for _, alias := range e.Aliases {
			if len(alias) >= minAliasLen {
				cands = append(cands, candidate{alias, e})
			}
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return len(cands[i].term) > len(cands[j].term)
	})

	for _, cand := range cands {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(cand.term) + `\b`)
		if err != nil {
			continue
		}
		m.partial = append(m.partial, partialTerm{re: re, entry: cand.entry})
	}

	return m
}

// Match classifies a raw venue string via the ordered strategy cascade.
// Matching is total: every input, including empty, yields a valid Result.
func (m *Matcher) Match(venue string) Result {
	trimmed := strings.TrimSpace(venue)
	cleaned := Clean(venue)

	res := Result{
		Confidence:    ConfidenceNone,
		OriginalVenue: venue,
		CleanedVenue:  cleaned,
	}
	if trimmed == "" {
		return res
	}

	// Exact: case-insensitive by construction of the catalog index.
	if e := m.catalog.FindByKey(trimmed); e != nil {
		res.Matched = true
		res.Entry = e
		res.Confidence = ConfidenceExact
		return res
	}

	// Cleaned: only worth a lookup when cleaning changed the string.
	if cleaned != "" && !strings.EqualFold(cleaned, trimmed) {
		if e := m.catalog.FindByKey(cleaned); e != nil {
			res.Matched = true
			res.Entry = e
			res.Confidence = ConfidenceCleaned
			return res
		}
	}

	// Partial: whole-word containment of an abbreviation or alias in the
	// raw string, longest term first.
	for _, term := range m.partial {
		if term.re.MatchString(venue) {
			res.Matched = true
			res.Entry = term.entry
			res.Confidence = ConfidencePartial
			return res
		}
	}

	// Acronym: most speculative, so it runs last. Generated from the
	// cleaned string, falling back to the raw one if cleaning emptied it.
	src := cleaned
	if src == "" {
		src = venue
	}
	if acr := Acronym(src); len(acr) >= 2 {
		if e := m.catalog.FindByKey(acr); e != nil {
			res.Matched = true
			res.Entry = e
			res.Confidence = ConfidenceAcronym
			return res
		}
	}

	return res
}
