// Package inreader decodes range input for the merge command.
package inreader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/huangsam/rangemerge/internal/parquet"
	"github.com/huangsam/rangemerge/schema"
)

// NewRangeReader returns the reader for the given input format.
func NewRangeReader(format schema.InputFormat) (contract.RangeReader, error) {
	switch format {
	case schema.JSONIn, "":
		return JSONReader{}, nil
	case schema.CSVIn:
		return CSVReader{}, nil
	case schema.ParquetIn:
		return ParquetReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format '%s'", format)
	}
}

// JSONReader passes the whole payload to the merge pipeline as a string,
// which decodes it and treats syntax errors as empty input.
type JSONReader struct{}

// ReadRanges implements contract.RangeReader.
func (JSONReader) ReadRanges(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON input: %w", err)
	}
	return string(data), nil
}

// CSVReader reads one "start,end" row per line. Cells that do not parse as
// numbers are kept as strings so that the sanitizer rejects the row. A
// header row therefore drops out on its own.
type CSVReader struct{}

// ReadRanges implements contract.RangeReader.
func (CSVReader) ReadRanges(r io.Reader) (any, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true
	csvReader.Comment = '#'

	var candidates []any
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV input: %w", err)
		}
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = parseCell(cell)
		}
		candidates = append(candidates, row)
	}
	return candidates, nil
}

// parseCell returns the cell as a float64 when it parses, otherwise the trimmed text.
func parseCell(cell string) any {
	cell = strings.TrimSpace(cell)
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}

// ParquetReader reads start/end columns from a Parquet file.
type ParquetReader struct{}

// ReadRanges implements contract.RangeReader.
func (ParquetReader) ReadRanges(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet input: %w", err)
	}
	rows, err := parquet.ReadRangeRows(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	candidates := make([]any, len(rows))
	for i, row := range rows {
		candidates[i] = []float64{row.Start, row.End}
	}
	return candidates, nil
}
