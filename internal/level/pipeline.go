package level

import (
	"silo-monitor.klederson.com/internal/config"
	"silo-monitor.klederson.com/internal/sensor"
)

// Params holds the calibration and filter constants for one run.
type Params struct {
	Near          float64
	Far           float64
	Alpha         float64
	HighThreshold int
}

// NewParams extracts the pipeline constants from cfg.
func NewParams(cfg config.Config) Params {
	return Params{
		Near:          cfg.Near,
		Far:           cfg.Far,
		Alpha:         cfg.Alpha,
		HighThreshold: cfg.HighThreshold,
	}
}

// Sample is everything one tick produced, ready for rendering.
type Sample struct {
	Raw      string
	Distance sensor.Distance
	Percent  float64 // unsmoothed fill level
	Smoothed float64
	Shown    int // Smoothed rounded for display
	High     bool
}

// IsHigh reports whether a displayed percentage trips the high-fill indicator.
func (p Params) IsHigh(shown int) bool {
	return shown >= p.HighThreshold
}

// Step runs one raw line through parse, convert and smooth, and returns
// the sample together with the state for the next tick.
func (p Params) Step(prev State, raw string) (Sample, State) {
	dist := sensor.ParseLine(raw)
	pct := ToPercent(dist, p.Near, p.Far)
	next := State{Smoothed: Smooth(prev.Smoothed, pct, p.Alpha)}
	shown := Round(next.Smoothed)

	return Sample{
		Raw:      raw,
		Distance: dist,
		Percent:  pct,
		Smoothed: next.Smoothed,
		Shown:    shown,
		High:     p.IsHigh(shown),
	}, next
}
