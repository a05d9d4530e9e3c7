package core

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"

	"github.com/huangsam/rangemerge/schema"
)

// SanitizeRange validates a single candidate. The candidate must be a slice
// or array with at least two elements whose first two entries are finite
// numbers; extra elements are ignored. The result is ordered so that
// Start <= End. The boolean is false when the candidate is rejected.
func SanitizeRange(candidate any) (schema.Interval, bool) {
	var first, second any

	switch c := candidate.(type) {
	case schema.Interval:
		first, second = c[0], c[1]
	case []any:
		if len(c) < 2 {
			return schema.Interval{}, false
		}
		first, second = c[0], c[1]
	case []float64:
		if len(c) < 2 {
			return schema.Interval{}, false
		}
		first, second = c[0], c[1]
	case []byte, json.RawMessage:
		// Raw bytes are text, not a pair of numbers.
		return schema.Interval{}, false
	default:
		rv := reflect.ValueOf(candidate)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return schema.Interval{}, false
		}
		if rv.Len() < 2 {
			return schema.Interval{}, false
		}
		first, second = rv.Index(0).Interface(), rv.Index(1).Interface()
	}

	start, ok := finiteNumber(first)
	if !ok {
		return schema.Interval{}, false
	}
	end, ok := finiteNumber(second)
	if !ok {
		return schema.Interval{}, false
	}
	return schema.NewInterval(start, end), true
}

// NormalizeRanges sanitizes every candidate, drops the rejected ones and
// sorts the rest by start, then by end.
func NormalizeRanges(candidates []any) []schema.Interval {
	intervals := make([]schema.Interval, 0, len(candidates))
	for _, candidate := range candidates {
		if iv, ok := SanitizeRange(candidate); ok {
			intervals = append(intervals, iv)
		}
	}
	sortIntervals(intervals)
	return intervals
}

// sortIntervals sorts intervals ascending by start, breaking ties by end.
func sortIntervals(intervals []schema.Interval) {
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].Start() != intervals[j].Start() {
			return intervals[i].Start() < intervals[j].Start()
		}
		return intervals[i].End() < intervals[j].End()
	})
}

// finiteNumber reports whether v is a real number that is neither NaN nor
// infinite. All integer and float kinds count, including named types built
// on them, and json.Number. Strings, booleans and nil do not.
func finiteNumber(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0, false
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
