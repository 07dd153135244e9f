package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual compares with an absolute tolerance.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
