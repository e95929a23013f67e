package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dataset is the on-disk catalog document.
type Dataset struct {
	Version     string  `yaml:"version"`
	LastUpdated string  `yaml:"last_updated"`
	Venues      []Entry `yaml:"venues"`
}

// Load reads a catalog dataset from a YAML file and builds a catalog.
// An empty venue list is valid; structurally invalid entries are not.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dataset: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw YAML dataset bytes.
func Parse(data []byte) (*Catalog, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing catalog dataset: %w", err)
	}

	if err := Validate(ds.Venues); err != nil {
		return nil, err
	}

	return New(ds.Venues), nil
}

// Validate checks that every entry carries the required fields.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("catalog entry %d: missing name", i)
		}
		if e.Abbr == "" {
			return fmt.Errorf("catalog entry %d (%s): missing abbreviation", i, e.Name)
		}
		if !e.Rank.Valid() {
			return fmt.Errorf("catalog entry %d (%s): invalid rank %q", i, e.Name, e.Rank)
		}
		if e.Kind != KindJournal && e.Kind != KindConference {
			return fmt.Errorf("catalog entry %d (%s): invalid type %q", i, e.Name, e.Kind)
		}
	}
	return nil
}

// Default builds a catalog from the built-in venue table.
func Default() *Catalog {
	return New(defaultEntries)
}
