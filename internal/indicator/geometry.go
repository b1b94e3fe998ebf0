package indicator

import (
	"math"

	"silo-monitor.klederson.com/internal/config"
)

// CellDistance computes the distance from a cell to the disc center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// DiscRadius returns the largest radius (in columns) that fits the box.
func DiscRadius(width, height int) float64 {
	centerX := width / 2
	centerY := height / 2
	r := math.Min(float64(centerX-1), float64(centerY)/config.AspectRatio)
	if r < 2 {
		r = 2
	}
	return r
}

// SurfaceRow returns the row coordinate of the liquid surface for a
// percentage. Cells whose center lies below it are drawn as filled.
func SurfaceRow(percent int, centerY int, radius float64) float64 {
	ry := radius * config.AspectRatio
	top := float64(centerY) - ry
	bottom := float64(centerY) + ry
	frac := math.Max(0, math.Min(100, float64(percent))) / 100
	return bottom - frac*(bottom-top)
}
