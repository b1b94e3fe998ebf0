package indicator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorNormal = lipgloss.Color("#4CFF72")
	ColorHigh   = lipgloss.Color("#FF4C4C")
)

const (
	cellFilled = '█'
	cellEmpty  = '░'
)

// Color returns the indicator color for the high-fill flag.
func Color(high bool) lipgloss.Color {
	if high {
		return ColorHigh
	}
	return ColorNormal
}

// Render draws the circular indicator, filled up to percent.
// The whole disc takes the high or normal color.
func Render(width, height int, percent int, high bool) string {
	if width < 5 || height < 3 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	radius := DiscRadius(width, height)
	surface := SurfaceRow(percent, centerY, radius)

	style := lipgloss.NewStyle().Foreground(Color(high))

	var sb strings.Builder
	for row := 0; row < height; row++ {
		var line strings.Builder
		for col := 0; col < width; col++ {
			if CellDistance(col, row, centerX, centerY) > radius+0.5 {
				line.WriteByte(' ')
				continue
			}
			if percent > 0 && float64(row)+0.5 > surface {
				line.WriteRune(cellFilled)
			} else {
				line.WriteRune(cellEmpty)
			}
		}
		sb.WriteString(style.Render(line.String()))
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
