package parquet

import (
	"bytes"
	"testing"

	"github.com/huangsam/rangemerge/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(IntervalRow))
	require.NotNil(t, s)

	for _, colName := range []string{"start", "end", "span", "sources"} {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertMergeResult(t *testing.T) {
	result := schema.MergeResult{
		Ranges:  []schema.Interval{{1, 4}, {10, 12}},
		Sources: []int{3, 1},
	}

	rows := ConvertMergeResult(result)
	require.Len(t, rows, 2)
	assert.Equal(t, IntervalRow{Start: 1, End: 4, Span: 3, Sources: 3}, rows[0])
	assert.Equal(t, IntervalRow{Start: 10, End: 12, Span: 2, Sources: 1}, rows[1])
}

func TestWriteIntervalRows(t *testing.T) {
	data := []IntervalRow{
		{Start: 1, End: 4, Span: 3, Sources: 2},
		{Start: 5, End: 6, Span: 1, Sources: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteIntervalRows(&buf, data))
	assert.Greater(t, buf.Len(), 0, "Output should not be empty")

	readData, err := parquet.Read[IntervalRow](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, data, readData)
}

func TestWriteIntervalRowsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIntervalRows(&buf, nil))

	rows, err := ReadRangeRows(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRangeRows(t *testing.T) {
	var buf bytes.Buffer
	input := []RangeRow{{Start: 5, End: 2}, {Start: 1, End: 3}}
	require.NoError(t, parquet.Write(&buf, input))

	rows, err := ReadRangeRows(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, input, rows)
}

func TestReadRangeRowsInvalidFile(t *testing.T) {
	data := []byte("not a parquet file")
	_, err := ReadRangeRows(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}
