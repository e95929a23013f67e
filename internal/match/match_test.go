package match

import (
	"testing"

	"paperlens/internal/catalog"
)

func testMatcher() *Matcher {
	return NewMatcher(catalog.New([]catalog.Entry{
		{Name: "IEEE/CVF Conference on Computer Vision and Pattern Recognition", Abbr: "CVPR", Rank: catalog.RankA, Kind: catalog.KindConference, Category: "Computer Vision"},
		{Name: "Conference on Neural Information Processing Systems", Abbr: "NeurIPS", Rank: catalog.RankA, Kind: catalog.KindConference, Category: "Machine Learning",
			Aliases: []string{"NIPS", "Neural Information Processing Systems"}},
		{Name: "International Conference on Machine Learning", Abbr: "ICML", Rank: catalog.RankA, Kind: catalog.KindConference, Category: "Machine Learning"},
		{Name: "Workshop on Applied Computing", Abbr: "WAC", Rank: catalog.RankC, Kind: catalog.KindConference, Category: "Misc"},
	}))
}

func TestMatch(t *testing.T) {
	m := testMatcher()

	tests := []struct {
		name           string
		venue          string
		wantMatched    bool
		wantAbbr       string
		wantConfidence Confidence
	}{
		{
			name:           "exact by abbreviation",
			venue:          "NeurIPS",
			wantMatched:    true,
			wantAbbr:       "NeurIPS",
			wantConfidence: ConfidenceExact,
		},
		{
			name:           "exact is case insensitive",
			venue:          "neurips",
			wantMatched:    true,
			wantAbbr:       "NeurIPS",
			wantConfidence: ConfidenceExact,
		},
		{
			name:           "exact by full name",
			venue:          "International Conference on Machine Learning",
			wantMatched:    true,
			wantAbbr:       "ICML",
			wantConfidence: ConfidenceExact,
		},
		{
			name:           "cleaned strips year",
			venue:          "cvpr 2024",
			wantMatched:    true,
			wantAbbr:       "CVPR",
			wantConfidence: ConfidenceCleaned,
		},
		{
			name:           "cleaned strips proceedings prefix",
			venue:          "Proceedings of the International Conference on Machine Learning",
			wantMatched:    true,
			wantAbbr:       "ICML",
			wantConfidence: ConfidenceCleaned,
		},
		{
			name:           "partial whole-word abbreviation",
			venue:          "Accepted to NeurIPS, camera ready pending",
			wantMatched:    true,
			wantAbbr:       "NeurIPS",
			wantConfidence: ConfidencePartial,
		},
		{
			name:           "acronym fallback",
			venue:          "National Institute for Progress in Science 2031", // acronym NIPS resolves via alias
			wantMatched:    true,
			wantAbbr:       "NeurIPS",
			wantConfidence: ConfidenceAcronym,
		},
		{
			name:        "no match",
			venue:       "Regional Journal of Obscure Studies",
			wantMatched: false,
		},
		{
			name:        "empty input",
			venue:       "",
			wantMatched: false,
		},
		{
			name:        "whitespace only",
			venue:       "   ",
			wantMatched: false,
		},
		{
			name:        "abbreviation inside a word is not partial",
			venue:       "microwaceonomics digest", // contains "wac" but not word-delimited
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.venue)
			if got.Matched != tt.wantMatched {
				t.Fatalf("Match(%q).Matched = %v, want %v (confidence %s)", tt.venue, got.Matched, tt.wantMatched, got.Confidence)
			}
			if !tt.wantMatched {
				if got.Entry != nil {
					t.Errorf("Match(%q).Entry = %v, want nil", tt.venue, got.Entry)
				}
				if got.Confidence != ConfidenceNone {
					t.Errorf("Match(%q).Confidence = %s, want none", tt.venue, got.Confidence)
				}
				return
			}
			if got.Entry.Abbr != tt.wantAbbr {
				t.Errorf("Match(%q).Entry.Abbr = %s, want %s", tt.venue, got.Entry.Abbr, tt.wantAbbr)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Match(%q).Confidence = %s, want %s", tt.venue, got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestMatchCaseVariantsAgree(t *testing.T) {
	m := testMatcher()

	variants := []string{"CVPR", "cvpr", "Cvpr", "cVpR"}
	base := m.Match(variants[0])

	for _, v := range variants[1:] {
		got := m.Match(v)
		if got.Matched != base.Matched || got.Confidence != base.Confidence {
			t.Errorf("Match(%q) = (%v, %s), want same as Match(%q) = (%v, %s)",
				v, got.Matched, got.Confidence, variants[0], base.Matched, base.Confidence)
		}
		if got.Entry.Abbr != base.Entry.Abbr {
			t.Errorf("Match(%q).Entry.Abbr = %s, want %s", v, got.Entry.Abbr, base.Entry.Abbr)
		}
	}
}

func TestMatchResultCarriesVenues(t *testing.T) {
	m := testMatcher()

	got := m.Match("CVPR 2024")
	if got.OriginalVenue != "CVPR 2024" {
		t.Errorf("OriginalVenue = %q, want %q", got.OriginalVenue, "CVPR 2024")
	}
	if got.CleanedVenue != "CVPR" {
		t.Errorf("CleanedVenue = %q, want %q", got.CleanedVenue, "CVPR")
	}
}

func TestPartialPrefersLongestTerm(t *testing.T) {
	m := NewMatcher(catalog.New([]catalog.Entry{
		{Name: "Short Venue", Abbr: "ACL", Rank: catalog.RankA, Kind: catalog.KindConference, Category: "NLP"},
		{Name: "Longer Venue", Abbr: "NAACL-HLT", Rank: catalog.RankB, Kind: catalog.KindConference, Category: "NLP"},
	}))

	// "NAACL-HLT" contains "ACL"? No word boundary inside, but make the
	// raw string carry both terms: the longer must win.
	got := m.Match("Findings of NAACL-HLT and ACL communities")
	if !got.Matched || got.Entry.Abbr != "NAACL-HLT" {
		t.Errorf("Match = %+v, want longest-first hit on NAACL-HLT", got)
	}
	if got.Confidence != ConfidencePartial {
		t.Errorf("Confidence = %s, want partial", got.Confidence)
	}
}

func TestShortAliasesSkippedForPartial(t *testing.T) {
	m := NewMatcher(catalog.New([]catalog.Entry{
		{Name: "Operations Venue", Abbr: "OPSVENUE", Rank: catalog.RankB, Kind: catalog.KindConference, Category: "Misc",
			Aliases: []string{"or"}}, // too short for partial matching
	}))

	if got := m.Match("papers on graph theory or complexity"); got.Matched {
		t.Errorf("Match matched on a 2-char alias: %+v", got)
	}
}
