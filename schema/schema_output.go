package schema

// EnrichedInterval adds presentation data to a merged interval.
type EnrichedInterval struct {
	Index   int     `json:"index"`
	Label   string  `json:"label"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Span    float64 `json:"span"`
	Sources int     `json:"sources"`
}

// GetPlainLabel returns a plain text label describing how many inputs
// were folded into an interval.
func GetPlainLabel(sources int) string {
	if sources > 1 {
		return MergedLabel
	}
	return SingleLabel
}

// EnrichIntervals adds index, span and label to each merged interval.
// A missing source count is treated as a single source.
func EnrichIntervals(result MergeResult) []EnrichedInterval {
	output := make([]EnrichedInterval, len(result.Ranges))
	for i, iv := range result.Ranges {
		sources := 1
		if i < len(result.Sources) {
			sources = result.Sources[i]
		}
		output[i] = EnrichedInterval{
			Index:   i + 1,
			Label:   GetPlainLabel(sources),
			Start:   iv.Start(),
			End:     iv.End(),
			Span:    iv.Span(),
			Sources: sources,
		}
	}
	return output
}
