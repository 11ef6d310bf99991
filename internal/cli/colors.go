package cli

import "github.com/charmbracelet/lipgloss"

// Phosphor colour palette, after the CRT scopes these captures come from.
// Shared across CLI output and the scan TUI.
var (
	PhosphorGreen = lipgloss.Color("#33FF66") // Bright trace green
	PhosphorDim   = lipgloss.Color("#1E9E45") // Faded trace
	TriggerAmber  = lipgloss.Color("#FFBF00") // Trigger markers
	AlarmRed      = lipgloss.Color("#FF4136") // Errors

	// Accent colours
	GridGray = lipgloss.Color("#7F8C8D") // Graticule gray for subtle text
)
