package validate

import "math"

// IsAmount reports whether v is a usable money amount: positive,
// finite, and with at most two decimal places.
func IsAmount(v float64) bool {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
