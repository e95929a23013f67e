package lookup

import (
	"regexp"
	"strings"
)

// TitleSimilarityThreshold is the minimum containment score at which a
// search hit's title is accepted as the queried paper.
const TitleSimilarityThreshold = 0.75

var reTitleToken = regexp.MustCompile(`[a-z0-9]+`)

// titleTokens lowercases a title and extracts its alphanumeric tokens.
func titleTokens(title string) map[string]bool {
	toks := reTitleToken.FindAllString(strings.ToLower(title), -1)
	set := make(map[string]bool, len(toks))
	for _, t := range toks {
		set[t] = true
	}
	return set
}

// TitleSimilarity scores how well a candidate title covers the query
// title: the fraction of query tokens present in the candidate. Returns 0
// when the query has no tokens.
func TitleSimilarity(query, candidate string) float64 {
	q := titleTokens(query)
	if len(q) == 0 {
		return 0
	}
	c := titleTokens(candidate)

	common := 0
	for t := range q {
		if c[t] {
			common++
		}
	}
	return float64(common) / float64(len(q))
}
