// Package parquet provides data structures and functions for exchanging
// interval data as Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/huangsam/rangemerge/schema"
	"github.com/parquet-go/parquet-go"
)

// IntervalRow is one merged interval in a Parquet export.
type IntervalRow struct {
	// Start is the lower endpoint of the merged interval
	Start float64 `parquet:"start,snappy"`

	// End is the upper endpoint of the merged interval
	End float64 `parquet:"end,snappy"`

	// Span is End - Start
	Span float64 `parquet:"span,snappy"`

	// Sources is how many valid inputs were folded into this interval
	Sources int32 `parquet:"sources,snappy"`
}

// RangeRow is one input range read from a Parquet file.
// Only the start and end columns are required; other columns are ignored.
type RangeRow struct {
	Start float64 `parquet:"start"`
	End   float64 `parquet:"end"`
}

// ConvertMergeResult converts a schema.MergeResult to IntervalRow records for Parquet export.
func ConvertMergeResult(result schema.MergeResult) []IntervalRow {
	rows := make([]IntervalRow, len(result.Ranges))
	for i, iv := range result.Ranges {
		sources := 1
		if i < len(result.Sources) {
			sources = result.Sources[i]
		}
		rows[i] = IntervalRow{
			Start:   iv.Start(),
			End:     iv.End(),
			Span:    iv.Span(),
			Sources: int32(sources),
		}
	}
	return rows
}

// WriteIntervalRows writes IntervalRow records to w.
func WriteIntervalRows(w io.Writer, rows []IntervalRow) error {
	// The schema is derived from the IntervalRow struct tags
	writer := parquet.NewGenericWriter[IntervalRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ReadRangeRows reads every row of a Parquet file of the given size as a RangeRow.
func ReadRangeRows(r io.ReaderAt, size int64) ([]RangeRow, error) {
	rows, err := parquet.Read[RangeRow](r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}
	return rows, nil
}
