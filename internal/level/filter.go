package level

import "math"

// Smooth applies one exponential moving average step.
func Smooth(previous, sample, alpha float64) float64 {
	return previous + alpha*(sample-previous)
}

// State is the smoothed level carried from one tick to the next.
// The zero value is the start-up state.
type State struct {
	Smoothed float64
}

// Round rounds half up, for display only.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
