package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/huangsam/rangemerge/internal/parquet"
	"github.com/huangsam/rangemerge/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteMergeResults outputs the merge result, dispatching based on the output format configured.
func WriteMergeResults(result schema.MergeResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForRanges(w, result, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteIntervalRows(w, parquet.ConvertMergeResult(result))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRangesTable(w, result, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
	return nil
}

// writeRangesTable generates and writes the human-readable table.
func writeRangesTable(w io.Writer, result schema.MergeResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"#", "Start", "End", "Span", "Sources", "Label"}
	table.Header(headers)

	// 2. Configure alignment to keep numbers lined up
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, iv := range schema.EnrichIntervals(result) {
		label := iv.Label
		if cfg.UseColors {
			label = contract.GetColorLabel(iv.Sources)
		}
		data = append(data, []string{
			strconv.Itoa(iv.Index),
			fmtFloat(iv.Start),
			fmtFloat(iv.End),
			fmtFloat(iv.Span),
			fmt.Sprintf(intFmt, iv.Sources),
			label,
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Merged %d valid ranges into %d (input: %d, dropped: %d, threshold: %s, total span: %s)\n",
		result.Valid, len(result.Ranges), result.Input, result.Dropped, fmtFloat(result.Threshold), fmtFloat(result.TotalSpan)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Merge completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRanges writes the merged intervals in CSV format.
func writeCSVResultsForRanges(w io.Writer, result schema.MergeResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"index", "start", "end", "span", "sources"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, iv := range schema.EnrichIntervals(result) {
			rec := []string{
				strconv.Itoa(iv.Index),
				fmtFloat(iv.Start),
				fmtFloat(iv.End),
				fmtFloat(iv.Span),
				fmt.Sprintf(intFmt, iv.Sources),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
