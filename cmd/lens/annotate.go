package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"paperlens/internal/catalog"
	"paperlens/internal/queue"
	"paperlens/internal/source"
	"paperlens/internal/tracker"
)

var (
	annotateEnrich bool
	annotateRank   string
)

func init() {
	annotateCmd.Flags().BoolVar(&annotateEnrich, "enrich", false, "Resolve missing venues via DBLP title lookup")
	annotateCmd.Flags().StringVar(&annotateRank, "rank", "", "Only report papers of this rank (A, B, C, or 'unknown')")
	rootCmd.AddCommand(annotateCmd)
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <papers.jsonl | page.html>",
	Short: "Classify every paper in a listing and report rank statistics",
	Long: `Process a paper listing: classify each entry's venue against the
catalog and print per-paper ranks plus a rank histogram.

Input is a JSONL file (one {"id","title","year","venue"} object per
line) or a saved DBLP author page (.html). With --enrich, papers
without a venue string are resolved through the DBLP title search.

Examples:
  lens annotate papers.jsonl
  lens annotate author-page.html --enrich
  lens annotate papers.jsonl --rank A --human`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

// annotateReport is the command's JSON output.
type annotateReport struct {
	Papers      []tracker.Record   `json:"papers"`
	Statistics  tracker.Statistics `json:"statistics"`
	Percentages map[string]float64 `json:"percentages"`
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := mustLoadConfig()
	matcher := mustLoadMatcher(cfg)

	src := openSource(args[0])

	opts := []tracker.TrackerOption{
		tracker.WithMarkers(tracker.NewMemoryMarkers()),
	}
	var q *queue.Queue
	if annotateEnrich && !cfg.DisableEnrichment {
		q = queue.New(queue.DefaultConcurrency)
		opts = append(opts, tracker.WithLookup(newLookupService(cfg), q))
	}

	trk := tracker.New(matcher, src, opts...)

	if _, err := trk.ProcessCurrentPage(); err != nil {
		exitWithError(ExitDataError, "processing listing: %v", err)
	}
	if q != nil {
		q.Wait()
	}

	records := selectRecords(trk, cfg.EnabledRankSet())
	stats := trk.Statistics()

	if !humanOutput {
		return outputJSON(annotateReport{
			Papers:      records,
			Statistics:  stats,
			Percentages: stats.Percentages(),
		})
	}

	for _, rec := range records {
		fmt.Printf("%-8s %s\n", rankLabel(rec), truncate(rec.Title, TitleMaxLen))
	}
	fmt.Printf("\n%d papers: A=%d B=%d C=%d unknown=%d\n",
		stats.Total, stats.A, stats.B, stats.C, stats.Unknown)
	return nil
}

// openSource picks the adapter for the input file.
func openSource(path string) tracker.Source {
	if strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm") {
		return source.NewDBLPPageSource(path)
	}
	return source.NewJSONLSource(path)
}

// selectRecords applies the --rank flag and the configured enabled-ranks
// set to the tracker's records.
func selectRecords(trk *tracker.Tracker, enabled map[catalog.Rank]bool) []tracker.Record {
	switch annotateRank {
	case "":
		var out []tracker.Record
		for _, rec := range trk.Records() {
			if rec.Match.Matched && !enabled[rec.Match.Entry.Rank] {
				continue
			}
			out = append(out, rec)
		}
		return out
	case "unknown":
		return trk.PapersByRank(nil)
	default:
		rank := catalog.Rank(annotateRank)
		if !rank.Valid() {
			exitWithError(ExitError, "invalid rank %q (valid: A, B, C, unknown)", annotateRank)
		}
		return trk.PapersByRank(&rank)
	}
}

// rankLabel renders a record's rank for human output.
func rankLabel(rec tracker.Record) string {
	if !rec.Match.Matched {
		if rec.LookupError != "" {
			return "error"
		}
		return "?"
	}
	return fmt.Sprintf("[%s]", rec.Match.Entry.Rank)
}
