// Package catalog defines the canonical venue ranking catalog and its
// lookup semantics.
package catalog

import "strings"

// Rank is a curated venue rank.
type Rank string

const (
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
)

// Valid reports whether r is one of the defined ranks.
func (r Rank) Valid() bool {
	return r == RankA || r == RankB || r == RankC
}

// rankOrder returns a comparable weight (A highest).
func rankOrder(r Rank) int {
	switch r {
	case RankA:
		return 3
	case RankB:
		return 2
	case RankC:
		return 1
	}
	return 0
}

// Kind distinguishes journals from conferences.
type Kind string

const (
	KindJournal    Kind = "journal"
	KindConference Kind = "conference"
)

// Entry is an immutable catalog record for one venue.
type Entry struct {
	Name     string   `yaml:"name" json:"name"`
	Abbr     string   `yaml:"abbr" json:"abbr"`
	Rank     Rank     `yaml:"rank" json:"rank"`
	Kind     Kind     `yaml:"type" json:"type"`
	Category string   `yaml:"category" json:"category"`
	Aliases  []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Catalog is a read-only index over a set of venue entries.
//
// Two indexes are kept: a primary index keyed by abbreviation (one
// collision-resolved entry per abbreviation) and a lookup index keyed by
// abbreviation, full name, and every alias. Abbreviation keys in the
// lookup index always resolve to the primary entry for that abbreviation.
type Catalog struct {
	entries []Entry
	primary map[string]*Entry
	lookup  map[string]*Entry
}

// New builds a catalog from entries. Entries are copied; the catalog never
// mutates after construction.
//
// When two entries share an abbreviation the higher-ranked one becomes
// primary; ties keep the first-loaded entry.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		primary: make(map[string]*Entry),
		lookup:  make(map[string]*Entry),
	}
	copy(c.entries, entries)

	for i := range c.entries {
		e := &c.entries[i]
		abbr := normalizeKey(e.Abbr)
		if abbr == "" {
			continue
		}
		cur, ok := c.primary[abbr]
		if !ok || rankOrder(e.Rank) > rankOrder(cur.Rank) {
			c.primary[abbr] = e
		}
	}

	for i := range c.entries {
		e := &c.entries[i]
		if key := normalizeKey(e.Name); key != "" {
			if _, ok := c.lookup[key]; !ok {
				c.lookup[key] = e
			}
		}
		for _, alias := range e.Aliases {
			if key := normalizeKey(alias); key != "" {
				if _, ok := c.lookup[key]; !ok {
					c.lookup[key] = e
				}
			}
		}
	}

	// Abbreviation keys override first-writer aliases: they must agree
	// with the primary index.
	for abbr, e := range c.primary {
		c.lookup[abbr] = e
	}

	return c
}

// normalizeKey normalizes a lookup key: trimmed, lowercased.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// FindByKey looks up an entry by abbreviation, full name, or alias.
// Lookup is case-insensitive; an empty key returns nil.
func (c *Catalog) FindByKey(key string) *Entry {
	k := normalizeKey(key)
	if k == "" {
		return nil
	}
	return c.lookup[k]
}

// Has reports whether any entry resolves for the key.
func (c *Catalog) Has(key string) bool {
	return c.FindByKey(key) != nil
}

// Entries returns all loaded entries.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of loaded entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ByRank returns all entries with the given rank.
func (c *Catalog) ByRank(r Rank) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Rank == r {
			out = append(out, e)
		}
	}
	return out
}

// ByKind returns all entries of the given kind.
func (c *Catalog) ByKind(k Kind) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory returns all entries in the given category.
func (c *Catalog) ByCategory(category string) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
