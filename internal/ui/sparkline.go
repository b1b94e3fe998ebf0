package ui

import "strings"

var sparkChars = []byte{'_', '.', '-', '~', '^'}

// RenderSparkline draws the last width values on a fixed 0-100 scale,
// right-aligned so the newest value sits at the right edge.
func RenderSparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	shown := values[start:]

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(shown)))
	for _, v := range shown {
		idx := int(v / 100 * float64(len(sparkChars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		sb.WriteByte(sparkChars[idx])
	}

	return sb.String()
}
