package schema

// MergeResult holds merged intervals together with the bookkeeping of a single merge call.
type MergeResult struct {
	Ranges    []Interval `json:"ranges"`     // Sorted, non-overlapping merged intervals
	Sources   []int      `json:"sources"`    // Number of valid inputs folded into each entry of Ranges
	Input     int        `json:"input"`      // Candidates seen after input resolution
	Valid     int        `json:"valid"`      // Candidates that survived sanitization
	Dropped   int        `json:"dropped"`    // Candidates rejected as malformed
	Threshold float64    `json:"threshold"`  // Effective gap threshold after coercion
	TotalSpan float64    `json:"total_span"` // Sum of spans of the merged intervals
}

// NewMergeResult returns an empty result with non-nil slices, so that it
// encodes as [] rather than null.
func NewMergeResult(threshold float64) MergeResult {
	return MergeResult{
		Ranges:    []Interval{},
		Sources:   []int{},
		Threshold: threshold,
	}
}
