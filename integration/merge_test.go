//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/rangemerge/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeInlineJSON runs merge with --ranges and checks the JSON result.
func TestMergeInlineJSON(t *testing.T) {
	stdout, _, err := runRangemerge(t, "", "merge", "--ranges", "[[1,3],[4,6]]", "--threshold", "1", "--output", "json")
	require.NoError(t, err)

	var result schema.MergeResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, []schema.Interval{{1, 6}}, result.Ranges)
	assert.Equal(t, []int{2}, result.Sources)
}

// TestMergeStdinCSV pipes CSV rows through stdin.
func TestMergeStdinCSV(t *testing.T) {
	csvInput := "# start,end\n1,3\n2,4\n\nbad,5\n5,6\n"
	stdout, _, err := runRangemerge(t, csvInput, "merge", "--input-format", "csv", "--output", "csv", "--precision", "0")
	require.NoError(t, err)
	assert.Equal(t, "index,start,end,span,sources\n1,1,4,3,2\n2,5,6,1,1\n", stdout)
}

// TestMergeFileTable reads a JSON file and prints the table summary.
func TestMergeFileTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranges.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[1,2],["a",3],[2,5]]`), 0o600))

	stdout, _, err := runRangemerge(t, "", "merge", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Merged 2 valid ranges into 1 (input: 3, dropped: 1")
}

// TestMergeMalformedInputSucceeds checks that bad range data is not a failure.
func TestMergeMalformedInputSucceeds(t *testing.T) {
	stdout, _, err := runRangemerge(t, "this is not json", "merge", "--output", "json")
	require.NoError(t, err)

	var result schema.MergeResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Empty(t, result.Ranges)
}

// TestMergeInvalidConfigFails checks that config errors exit non-zero.
func TestMergeInvalidConfigFails(t *testing.T) {
	_, stderr, err := runRangemerge(t, "", "merge", "--ranges", "[[1,2]]", "--output", "parquet")
	require.Error(t, err)
	assert.Contains(t, stderr, "parquet output requires --output-file")
}

// TestMergeParquetRoundTrip writes parquet and reads it back as input.
func TestMergeParquetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.parquet")

	_, _, err := runRangemerge(t, "", "merge", "--ranges", "[[1,3],[2,4],[10,12]]", "--output", "parquet", "--output-file", first)
	require.NoError(t, err)

	stdout, _, err := runRangemerge(t, "", "merge", first, "--input-format", "parquet", "--threshold", "6", "--output", "json")
	require.NoError(t, err)

	var result schema.MergeResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, []schema.Interval{{1, 12}}, result.Ranges)
}

// TestVersion checks the version command.
func TestVersion(t *testing.T) {
	stdout, stderr, err := runRangemerge(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout+stderr, "rangemerge CLI")
}
