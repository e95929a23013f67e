package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <paper title>",
	Short: "Resolve a paper title to its venue via DBLP",
	Long: `Look up a paper by title using the DBLP search API and report the
resolved venue with its rank classification. Definitive results are
cached; transient failures are not, so retrying is safe.

Examples:
  lens lookup "Attention Is All You Need"
  lens lookup "Deep Residual Learning for Image Recognition" --human`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

// lookupOutput pairs the raw lookup result with the venue classification.
type lookupOutput struct {
	Title  string      `json:"title"`
	Result interface{} `json:"result"`
	Match  interface{} `json:"match,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := mustLoadConfig()
	matcher := mustLoadMatcher(cfg)
	svc := newLookupService(cfg)

	title := strings.Join(args, " ")
	res := svc.QueryByTitle(context.Background(), title)

	if res.Error != "" {
		exitWithError(ExitLookupError, "lookup failed: %s", res.Error)
	}

	out := lookupOutput{Title: title, Result: res}
	if res.Found {
		out.Match = matcher.Match(res.Venue)
	}

	if !humanOutput {
		return outputJSON(out)
	}

	if !res.Found {
		fmt.Println("not found")
		return nil
	}
	fmt.Printf("venue: %s (%s)\n", res.Venue, res.Year)
	if m := matcher.Match(res.Venue); m.Matched {
		fmt.Printf("rank:  %s (%s confidence)\n", m.Entry.Rank, m.Confidence)
	} else {
		fmt.Println("rank:  unknown")
	}
	return nil
}
