package ui

import "github.com/charmbracelet/lipgloss"

// Control-room palette
var (
	ColorBar     = lipgloss.Color("#2A2A2A")
	ColorText    = lipgloss.Color("#FFFFFF")
	ColorValue   = lipgloss.Color("#00FFFF")
	ColorBorder  = lipgloss.Color("#3C8C8C")
	ColorOK      = lipgloss.Color("#4CFF72")
	ColorError   = lipgloss.Color("#FF4C4C")
	ColorWarning = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorValue).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusLive = lipgloss.NewStyle().
			Foreground(ColorOK).
			Bold(true)

	StyleStatusOffline = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StyleStatusWarn = lipgloss.NewStyle().
			Foreground(ColorWarning)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleDistance = lipgloss.NewStyle().
			Foreground(ColorValue).
			Bold(true)

	StylePercent = lipgloss.NewStyle().
			Foreground(ColorValue).
			Bold(true)

	StyleSparkline = lipgloss.NewStyle().
			Foreground(ColorValue)
)
