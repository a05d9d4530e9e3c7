// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"io"
	"time"

	"github.com/huangsam/rangemerge/schema"
)

// RangeReader decodes raw range input from a stream.
// This allows the merge command to be tested without touching the filesystem.
//
// The returned value is handed to the merge pipeline as-is, so a reader only
// fails on I/O or container-level problems. Malformed range data is never an
// error at this layer; the pipeline drops it.
type RangeReader interface {
	ReadRanges(r io.Reader) (any, error)
}

// ResultWriter renders a merge result in the configured output format.
type ResultWriter interface {
	WriteMerge(result schema.MergeResult, cfg *Config, duration time.Duration) error
}
