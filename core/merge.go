package core

import "github.com/huangsam/rangemerge/schema"

// MergeTimeRanges merges ranges into a minimal sorted set of non-overlapping
// intervals. Consecutive intervals whose gap is at most the threshold are
// joined; the boundary is inclusive.
//
// ranges may be any slice of pairs or a JSON string holding an array of
// pairs. threshold is optional; only the first value is used, and it goes
// through CoerceThreshold. Malformed input never causes an error: it degrades
// to an empty or smaller result.
func MergeTimeRanges(ranges any, threshold ...any) []schema.Interval {
	return MergeWithReport(ranges, threshold...).Ranges
}

// MergeWithReport runs the same pipeline as MergeTimeRanges and also returns
// counts, the effective threshold and per-interval source counts.
func MergeWithReport(ranges any, threshold ...any) schema.MergeResult {
	t := DefaultThreshold
	if len(threshold) > 0 {
		t = CoerceThreshold(threshold[0])
	}

	result := schema.NewMergeResult(t)
	candidates := ResolveInput(ranges)
	if len(candidates) == 0 {
		return result
	}

	normalized := NormalizeRanges(candidates)
	result.Input = len(candidates)
	result.Valid = len(normalized)
	result.Dropped = result.Input - result.Valid
	result.Ranges, result.Sources = sweep(normalized, t)
	for _, iv := range result.Ranges {
		result.TotalSpan = schema.SaturatingAdd(result.TotalSpan, iv.Span())
	}
	return result
}

// MergeSortedRanges merges intervals that are already sanitized and sorted
// by NormalizeRanges. threshold must already be coerced.
func MergeSortedRanges(ranges []schema.Interval, threshold float64) []schema.Interval {
	merged, _ := sweep(ranges, threshold)
	return merged
}

// sweep performs the single forward pass. The open interval is always the
// last element of merged; its start never changes once set.
func sweep(ranges []schema.Interval, threshold float64) ([]schema.Interval, []int) {
	if len(ranges) == 0 {
		return []schema.Interval{}, []int{}
	}

	merged := []schema.Interval{ranges[0]}
	sources := []int{1}

	for _, current := range ranges[1:] {
		last := len(merged) - 1
		gap := current.Start() - merged[last].End()

		if gap <= threshold {
			merged[last][1] = max(merged[last].End(), current.End())
			sources[last]++
			continue
		}
		merged = append(merged, current)
		sources = append(sources, 1)
	}

	return merged, sources
}
