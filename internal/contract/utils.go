package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/rangemerge/schema"
	"golang.org/x/term"
)

// Color variables for console output.
var (
	MergedColor = color.New(color.FgYellow, color.Bold) // MergedColor marks intervals built from several inputs.
	SingleColor = color.New(color.FgCyan)               // SingleColor marks intervals that came from one input.
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(sources int) string {
	text := schema.GetPlainLabel(sources)
	if text == schema.MergedLabel {
		return MergedColor.Sprint(text)
	}
	return SingleColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// SelectInputFile returns the file handle to read ranges from. An empty path
// or "-" selects os.Stdin.
func SelectInputFile(filePath string) (*os.File, error) {
	if filePath == "" || filePath == StdinPath {
		return os.Stdin, nil
	}
	return os.Open(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseColorString parses the color setting. "auto" enables colors only when
// stdout is a terminal; every other value goes through ParseBoolString.
func ParseColorString(s string) (bool, error) {
	if strings.EqualFold(s, "auto") {
		return term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return ParseBoolString(s)
}
