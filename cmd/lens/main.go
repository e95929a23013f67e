// Package main provides the lens CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lens",
	Short: "Venue ranking annotator for academic paper listings",
	Long: `lens classifies publication venue strings against a curated ranking
catalog and annotates paper listings with rank badges.

Venue strings are resolved through an ordered matching cascade (exact,
cleaned, partial, acronym); papers without any venue string can be
enriched through a cached DBLP title lookup. All commands output JSON by
default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
