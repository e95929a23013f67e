package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperlens/internal/catalog"
)

var (
	catalogRank     string
	catalogKind     string
	catalogCategory string
)

func init() {
	catalogListCmd.Flags().StringVar(&catalogRank, "rank", "", "Filter by rank (A, B, C)")
	catalogListCmd.Flags().StringVar(&catalogKind, "type", "", "Filter by type (conference, journal)")
	catalogListCmd.Flags().StringVar(&catalogCategory, "category", "", "Filter by category")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogInfoCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the venue ranking catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	RunE:  runCatalogList,
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog summary statistics",
	RunE:  runCatalogInfo,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	cat := mustLoadCatalog(cfg)

	entries := cat.Entries()
	switch {
	case catalogRank != "":
		rank := catalog.Rank(catalogRank)
		if !rank.Valid() {
			return fmt.Errorf("invalid rank %q (valid: A, B, C)", catalogRank)
		}
		entries = cat.ByRank(rank)
	case catalogKind != "":
		kind := catalog.Kind(catalogKind)
		if kind != catalog.KindConference && kind != catalog.KindJournal {
			return fmt.Errorf("invalid type %q (valid: conference, journal)", catalogKind)
		}
		entries = cat.ByKind(kind)
	case catalogCategory != "":
		entries = cat.ByCategory(catalogCategory)
	}

	if !humanOutput {
		return outputJSON(entries)
	}

	for _, e := range entries {
		fmt.Printf("%-16s %s  %-10s  %s\n", e.Abbr, e.Rank, e.Kind, e.Name)
	}
	fmt.Printf("\n%d entries\n", len(entries))
	return nil
}

// catalogInfo summarizes a loaded catalog.
type catalogInfo struct {
	Total       int            `json:"total"`
	ByRank      map[string]int `json:"by_rank"`
	Conferences int            `json:"conferences"`
	Journals    int            `json:"journals"`
}

func runCatalogInfo(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	cat := mustLoadCatalog(cfg)

	info := catalogInfo{
		Total: cat.Len(),
		ByRank: map[string]int{
			"A": len(cat.ByRank(catalog.RankA)),
			"B": len(cat.ByRank(catalog.RankB)),
			"C": len(cat.ByRank(catalog.RankC)),
		},
		Conferences: len(cat.ByKind(catalog.KindConference)),
		Journals:    len(cat.ByKind(catalog.KindJournal)),
	}

	if !humanOutput {
		return outputJSON(info)
	}

	fmt.Printf("Entries:     %d\n", info.Total)
	fmt.Printf("Ranks:       A=%d B=%d C=%d\n", info.ByRank["A"], info.ByRank["B"], info.ByRank["C"])
	fmt.Printf("Conferences: %d\n", info.Conferences)
	fmt.Printf("Journals:    %d\n", info.Journals)
	return nil
}
