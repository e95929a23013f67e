package match

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips year",
			input: "CVPR 2024",
			want:  "CVPR",
		},
		{
			name:  "strips short year",
			input: "NeurIPS '24",
			want:  "NeurIPS",
		},
		{
			name:  "strips parenthetical",
			input: "International Conference on Machine Learning (ICML)",
			want:  "International Conference on Machine Learning",
		},
		{
			name:  "strips proceedings prefix",
			input: "Proceedings of the International Conference on Machine Learning",
			want:  "International Conference on Machine Learning",
		},
		{
			name:  "strips proceedings prefix without article",
			input: "Proceedings of ACM SIGMOD",
			want:  "ACM SIGMOD",
		},
		{
			name:  "strips edition ordinal",
			input: "41st International Conference on Machine Learning",
			want:  "International Conference on Machine Learning",
		},
		{
			name:  "strips volume and issue",
			input: "Journal of Machine Learning Research, vol. 25, no. 3",
			want:  "Journal of Machine Learning Research",
		},
		{
			name:  "strips page range",
			input: "EMNLP, pp. 1021-1034",
			want:  "EMNLP",
		},
		{
			name:  "strips trailing dash suffix",
			input: "NeurIPS - Proceedings",
			want:  "NeurIPS",
		},
		{
			name:  "strips trailing workshop suffix",
			input: "ICLR - Workshop",
			want:  "ICLR",
		},
		{
			name:  "collapses whitespace",
			input: "ACL   2023   Findings",
			want:  "ACL Findings",
		},
		{
			name:  "trims punctuation",
			input: ", CVPR.",
			want:  "CVPR",
		},
		{
			name:  "everything at once",
			input: "Proceedings of the 38th IEEE Conference on Computer Vision (CVPR 2024), pp. 100-110",
			want:  "IEEE Conference on Computer Vision",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "pure noise",
			input: "(2024) vol. 3",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"CVPR 2024",
		"Proceedings of the Proceedings of the VLDB Endowment",
		"NeurIPS '24 - Workshop - Proceedings",
		"41st ICML (2024), vol. 2, pp. 1-10",
		"plain venue name",
		"",
		"((nested)) 1999",
		"--- 2021 ---",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanRemovesYearTokens(t *testing.T) {
	bases := []string{"CVPR", "Some Venue", "International Conference on Testing"}
	years := []string{"1900", "1987", "2024", "2099"}

	for _, b := range bases {
		for _, y := range years {
			got := Clean(b + " " + y)
			for _, tok := range strings.Fields(got) {
				if tok == y {
					t.Errorf("Clean(%q) = %q still contains year token %s", b+" "+y, got, y)
				}
			}
		}
	}
}

func TestAcronym(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "drops stop words",
			input: "International Conference on Machine Learning",
			want:  "ML",
		},
		{
			name:  "venue type nouns dropped",
			input: "Neural Information Processing Systems",
			want:  "NIPS",
		},
		{
			name:  "ieee and acm dropped",
			input: "IEEE Transactions on Pattern Analysis and Machine Intelligence",
			want:  "PAMI",
		},
		{
			name:  "punctuation ignored",
			input: "Computer-Vision & Pattern, Recognition!",
			want:  "CVPR",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "all stop words",
			input: "the annual international conference",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Acronym(tt.input); got != tt.want {
				t.Errorf("Acronym(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
