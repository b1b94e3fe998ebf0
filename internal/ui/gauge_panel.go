package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gauge is the content of the main panel for one frame.
type Gauge struct {
	Distance  string // "123.4 cm" or "ERR"
	Shown     int    // rounded smoothed percentage
	Indicator string // pre-rendered indicator disc
	History   []float64
}

// Title, distance label+value, level label+value, two spacers, sparkline.
const gaugeTextLines = 8

// GaugeIndicatorSize returns the box available to the indicator disc
// inside a gauge panel of the given size.
func GaugeIndicatorSize(width, height int) (int, int) {
	w := width - 4
	h := height - 2 - gaugeTextLines
	// A disc h rows tall is about 2h columns wide
	if w > h*2+2 {
		w = h*2 + 2
	}
	return w, h
}

// RenderGaugePanel renders the distance and level readout with the
// indicator disc between them and the level history underneath.
// The indicator is rendered externally to avoid import cycles.
func RenderGaugePanel(width, height int, g Gauge) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(innerW, lipgloss.Center, s)
	}

	lines := []string{
		StylePanelTitle.Render("SILO LEVEL"),
		center(StyleLabel.Render("Distance:")),
		center(StyleDistance.Render(g.Distance)),
		center(StyleLabel.Render("Level:")),
		center(StylePercent.Render(fmt.Sprintf("%d%%", g.Shown))),
		"",
	}

	if g.Indicator != "" {
		lines = append(lines, center(g.Indicator))
	}

	lines = append(lines, "", center(StyleSparkline.Render(RenderSparkline(g.History, innerW-2))))

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
