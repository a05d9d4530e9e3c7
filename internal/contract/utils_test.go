package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	assert.Equal(t, "merged", GetColorLabel(3))
	assert.Equal(t, "single", GetColorLabel(1))
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseColorString(t *testing.T) {
	_, err := ParseColorString("AUTO")
	assert.NoError(t, err)

	got, err := ParseColorString("no")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = ParseColorString("rainbow")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path selects stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.FileExists(t, path)
	})
}

func TestSelectInputFile(t *testing.T) {
	f, err := SelectInputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, f)

	f, err = SelectInputFile(StdinPath)
	require.NoError(t, err)
	assert.Equal(t, os.Stdin, f)

	_, err = SelectInputFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
