// Package source provides concrete Source adapters for the tracker: a
// JSONL record file and a saved DBLP author page.
package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"paperlens/internal/tracker"
)

// MaxLineCapacity is the maximum buffer size for reading JSONL lines.
const MaxLineCapacity = 1024 * 1024

// JSONLSource reads paper entries from a JSONL file, one JSON object per
// line with the tracker.Paper field names. A malformed line is logged and
// skipped; it never aborts the rest of the file.
type JSONLSource struct {
	path string
	cb   func()
	logf func(format string, args ...any)
}

// NewJSONLSource creates a source over the given file.
func NewJSONLSource(path string) *JSONLSource {
	return &JSONLSource{path: path, logf: log.Printf}
}

// IsMatch reports whether the source handles the given location.
func (s *JSONLSource) IsMatch(url string) bool {
	return strings.HasSuffix(url, ".jsonl")
}

// Papers reads the file and returns its entries. The file is re-read on
// every call so repeated scans observe edits.
func (s *JSONLSource) Papers() ([]tracker.Paper, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening papers file: %w", err)
	}
	defer f.Close()

	var papers []tracker.Paper
	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p tracker.Paper
		if err := json.Unmarshal(line, &p); err != nil {
			s.logf("source: %s line %d: %v", s.path, lineNum, err)
			continue
		}

		// A publication year without a venue string is this source's
		// likely-published signal for fallback lookups.
		if !p.LikelyPublished && p.Venue == "" && p.Year != "" {
			p.LikelyPublished = true
		}
		p.Element = p.ID
		papers = append(papers, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading papers file: %w", err)
	}
	return papers, nil
}

// ObserveChanges stores the change callback. File sources have no push
// notification; Notify triggers the callback manually.
func (s *JSONLSource) ObserveChanges(cb func()) {
	s.cb = cb
}

// Notify invokes the registered change callback, if any.
func (s *JSONLSource) Notify() {
	if s.cb != nil {
		s.cb()
	}
}

// Disconnect drops the change callback.
func (s *JSONLSource) Disconnect() {
	s.cb = nil
}
