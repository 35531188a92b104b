package render

// DefaultCutoff is the threshold used when a configuration leaves the
// cutoff unset.
const DefaultCutoff = 0.5

// IsOn reports whether a cell value renders as lit. Strictly greater-than,
// so lowering the cutoff can only grow the on-set. NaN compares false and
// therefore renders off; that is the defined behavior, not an error.
func IsOn(v, cutoff float64) bool {
	return v > cutoff
}
