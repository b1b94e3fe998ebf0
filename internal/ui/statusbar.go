package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports about the running pipeline.
type StatusInfo struct {
	Connected bool
	Near, Far float64
	Alpha     float64
	Threshold int
	Dropped   uint64
	Ticks     uint64
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusInfo) string {
	status := ""
	if s.Connected {
		status = StyleStatusLive.Render("[READING]")
	} else {
		status = StyleStatusOffline.Render("[NO INPUT]")
	}

	info := fmt.Sprintf(" Full: %.0fcm  Empty: %.0fcm  Alpha: %.2f  Alarm: >=%d%%  Ticks: %d",
		s.Near, s.Far, s.Alpha, s.Threshold, s.Ticks)

	content := status + StyleStatusBar.Render(info)
	if s.Dropped > 0 {
		content += StyleStatusWarn.Render(fmt.Sprintf("  Dropped: %d", s.Dropped))
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
