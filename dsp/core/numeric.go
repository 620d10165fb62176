package core

import "math"

// Clamp limits v to [lo, hi]. The bounds may be given in either order.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite scans data for NaN or infinite samples and returns the index
// of the first one, or -1 when the slice is clean.
func AllFinite(data []float64) (bool, int) {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false, i
		}
	}
	return true, -1
}

// LinearPowerToDB returns 10·log10(power); -Inf for 0, NaN below 0.
func LinearPowerToDB(power float64) float64 {
	return toDB(power, 10)
}

// LinearToDB returns 20·log10(amplitude); -Inf for 0, NaN below 0.
func LinearToDB(amplitude float64) float64 {
	return toDB(amplitude, 20)
}

func toDB(v, scale float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return math.NaN()
	case v == 0:
		return math.Inf(-1)
	default:
		return scale * math.Log10(v)
	}
}
