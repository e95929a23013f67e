package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <venue string>",
	Short: "Classify a venue string against the ranking catalog",
	Long: `Classify a raw venue string through the matching cascade.

Examples:
  lens match "CVPR 2024"
  lens match "Proceedings of the 41st International Conference on Machine Learning"
  lens match "Accepted to NeurIPS" --human`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	matcher := mustLoadMatcher(cfg)

	venue := strings.Join(args, " ")
	res := matcher.Match(venue)

	if !humanOutput {
		return outputJSON(res)
	}

	if !res.Matched {
		fmt.Printf("no match (cleaned: %q)\n", res.CleanedVenue)
		return nil
	}
	fmt.Printf("%s  rank %s  (%s, %s confidence)\n",
		res.Entry.Abbr, res.Entry.Rank, res.Entry.Name, res.Confidence)
	return nil
}
