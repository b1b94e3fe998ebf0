package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, gauge panel and status bar.
func ComposeLayout(menuBar, gaugePanel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, gaugePanel, statusBar)
}
