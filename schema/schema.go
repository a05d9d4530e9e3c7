// Package schema has models, constants and output shapes for all parts of rangemerge.
package schema

import "math"

// Interval is a closed numeric span stored as [start, end].
// Values produced by the merge pipeline always satisfy start <= end.
// It encodes to JSON as a two-element array.
type Interval [2]float64

// NewInterval returns the interval covering a and b, swapping them when
// they arrive in descending order.
func NewInterval(a, b float64) Interval {
	if a <= b {
		return Interval{a, b}
	}
	return Interval{b, a}
}

// Start returns the lower endpoint.
func (iv Interval) Start() float64 { return iv[0] }

// End returns the upper endpoint.
func (iv Interval) End() float64 { return iv[1] }

// Span returns End - Start, saturated at math.MaxFloat64 when the
// difference of two finite endpoints overflows.
func (iv Interval) Span() float64 {
	return SaturatingAdd(iv[1], -iv[0])
}

// SaturatingAdd returns a + b clamped to the finite float64 range.
func SaturatingAdd(a, b float64) float64 {
	sum := a + b
	switch {
	case math.IsInf(sum, 1):
		return math.MaxFloat64
	case math.IsInf(sum, -1):
		return -math.MaxFloat64
	}
	return sum
}
