package core

// DefaultThreshold is used when the caller supplies no threshold.
// Only touching or overlapping intervals merge at this value.
const DefaultThreshold = 0.0

// CoerceThreshold clamps value to a finite, non-negative number.
// Non-numeric, NaN, infinite and negative values all become 0.
func CoerceThreshold(value any) float64 {
	t, ok := finiteNumber(value)
	if !ok || t <= 0 {
		return DefaultThreshold
	}
	return t
}
