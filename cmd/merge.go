package cmd

import (
	"github.com/huangsam/rangemerge/core"
	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/huangsam/rangemerge/internal/inreader"
	"github.com/huangsam/rangemerge/internal/outwriter"
	"github.com/spf13/cobra"
)

// mergeCmd merges ranges from a file, inline flag or stdin.
var mergeCmd = &cobra.Command{
	Use:   "merge [file]",
	Short: "Merge time ranges into non-overlapping intervals.",
	Long: `Read [start, end] pairs and merge every pair that overlaps, touches, or
sits within --threshold of its neighbour.

Input comes from the file argument, from --ranges, or from stdin when neither
is given (or the file is '-'). Malformed pairs are dropped and reported in the
summary; they never make the command fail.

Examples:
  # Merge inline ranges
  rangemerge merge --ranges '[[1,3],[2,4],[5,6]]'

  # Bridge gaps of up to 60 seconds between epoch-second ranges
  rangemerge merge sessions.json --threshold 60

  # Read CSV rows from stdin and print JSON
  cat ranges.csv | rangemerge merge --input-format csv --output json

  # Export merged intervals to Parquet
  rangemerge merge ranges.json --output parquet --output-file merged.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		reader, err := inreader.NewRangeReader(cfg.InputFormat)
		if err != nil {
			contract.LogFatal("Cannot select input reader", err)
		}
		if err := core.ExecuteMerge(rootCtx, cfg, reader, outwriter.NewOutWriter()); err != nil {
			contract.LogFatal("Cannot run merge", err)
		}
	},
}
