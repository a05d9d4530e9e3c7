// Package core has core logic for resolving, sanitizing and merging time ranges.
package core

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/rangemerge/internal/contract"
	"github.com/huangsam/rangemerge/internal/logger"
)

// ExecuteMerge reads ranges from the configured source, merges them and hands
// the result to writer. It serves as the main entry point for the 'merge' mode.
//
// Errors come only from reading or writing. Malformed range data is dropped
// by the pipeline and shows up in the result counts.
func ExecuteMerge(ctx context.Context, cfg *contract.Config, reader contract.RangeReader, writer contract.ResultWriter) error {
	start := time.Now()

	payload, err := readPayload(ctx, cfg, reader)
	if err != nil {
		return err
	}

	result := MergeWithReport(payload, cfg.Threshold)
	logger.C(ctx).Debug().
		Int("input", result.Input).
		Int("valid", result.Valid).
		Int("dropped", result.Dropped).
		Int("merged", len(result.Ranges)).
		Float64("threshold", result.Threshold).
		Msg("merged ranges")

	duration := time.Since(start)
	if err := writer.WriteMerge(result, cfg, duration); err != nil {
		return fmt.Errorf("failed to write merge result: %w", err)
	}
	return nil
}

// readPayload selects the input source: inline ranges first, then the input
// file, then stdin.
func readPayload(ctx context.Context, cfg *contract.Config, reader contract.RangeReader) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.InlineRanges != "" {
		payload, err := reader.ReadRanges(strings.NewReader(cfg.InlineRanges))
		if err != nil {
			return nil, fmt.Errorf("failed to read inline ranges: %w", err)
		}
		return payload, nil
	}

	file, err := contract.SelectInputFile(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	if file != os.Stdin {
		defer func() { _ = file.Close() }()
	}

	payload, err := reader.ReadRanges(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read ranges from %s: %w", inputName(cfg), err)
	}
	return payload, nil
}

func inputName(cfg *contract.Config) string {
	if cfg.ReadsStdin() {
		return "stdin"
	}
	return cfg.InputPath
}
