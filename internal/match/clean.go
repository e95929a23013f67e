// Package match implements the venue string matching pipeline: cleaning,
// acronym generation, and the ordered strategy cascade against the catalog.
package match

import (
	"regexp"
	"strings"
)

var (
	reParens     = regexp.MustCompile(`\([^)]*\)`)
	reYear       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	reShortYear  = regexp.MustCompile(`['’]\d{2}\b`)
	reVolume     = regexp.MustCompile(`(?i)\bvol(?:ume)?\.?\s*\d+\b`)
	reIssue      = regexp.MustCompile(`(?i)\b(?:no|issue)\.?\s*\d+\b`)
	rePages      = regexp.MustCompile(`(?i)\b(?:pp|pages)\.?\s*\d+\s*[-–—]+\s*\d+\b`)
	reOrdinal    = regexp.MustCompile(`(?i)\b\d+(?:st|nd|rd|th)\b`)
	reProcPrefix = regexp.MustCompile(`(?i)^proceedings\s+of\s+(?:the\s+)?`)
	reDashSuffix = regexp.MustCompile(`(?i)\s*[-–—]\s*(?:proceedings|workshops?|symposiums?|symposia|conferences?)\s*$`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// Clean normalizes a raw venue string: parenthetical content, year tokens,
// volume/issue/page tokens, edition ordinals, a leading "proceedings of"
// prefix, and trailing dash-separated venue-type suffixes are removed,
// whitespace is collapsed, and surrounding punctuation is trimmed.
//
// Clean is idempotent: Clean(Clean(s)) == Clean(s). The pipeline is applied
// until it reaches a fixed point so nested noise cannot survive one pass
// and reappear removable on the next.
func Clean(venue string) string {
	s := venue
	for range 8 {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

func cleanOnce(s string) string {
	s = reParens.ReplaceAllString(s, " ")
	s = reYear.ReplaceAllString(s, " ")
	s = reShortYear.ReplaceAllString(s, " ")
	s = reVolume.ReplaceAllString(s, " ")
	s = reIssue.ReplaceAllString(s, " ")
	s = rePages.ReplaceAllString(s, " ")
	s = reOrdinal.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = reProcPrefix.ReplaceAllString(s, "")
	s = reDashSuffix.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.Trim(s, " \t.,;:-–—/")
	return s
}

// acronymStopWords are dropped before taking first letters: articles,
// prepositions, and generic venue-type nouns that carry no identity.
var acronymStopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"of": true, "on": true, "in": true, "for": true, "and": true,
	"to": true, "at": true, "with": true, "by": true,
	"conference": true, "workshop": true, "symposium": true,
	"journal": true, "transactions": true,
	"ieee": true, "acm": true, "international": true, "annual": true,
}

var reNonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// Acronym derives an uppercase acronym from a venue string by taking the
// first character of every non-stop-word token. Empty or all-stop-word
// input yields "".
func Acronym(venue string) string {
	s := strings.ToLower(venue)
	s = reNonAlnum.ReplaceAllString(s, " ")

	var b strings.Builder
	for _, tok := range strings.Fields(s) {
		if acronymStopWords[tok] {
			continue
		}
		b.WriteByte(tok[0])
	}
	return strings.ToUpper(b.String())
}
