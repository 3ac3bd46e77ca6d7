package scoring

import "math"

// Signal is one normalized 0-100 component of a weighted score.
type Signal struct {
	Value  float64
	Weight float64
}

// Combine folds weighted signals into a single bounded score. Every scorer in
// this package is some instantiation of this: normalize heterogeneous inputs to
// 0-100, weight, sum, clamp.
func Combine(signals ...Signal) float64 {
	total := 0.0
	for _, s := range signals {
		total += s.Value * s.Weight
	}
	return Clamp(total, 0, 100)
}

func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ratio returns v/target scaled to 0-100 and capped at 100.
func ratio(v, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(v/target*100, 100)
}
