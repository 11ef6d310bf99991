package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	// Title style - bold trace green
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PhosphorGreen).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(GridGray).
			Italic(true)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TriggerAmber).
			MarginTop(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PhosphorGreen)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AlarmRed)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(GridGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PhosphorDim).
			Padding(1, 2).
			MarginTop(1)
)

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("tekwfm"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints a key-value line
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println(HeaderStyle.Render(title))
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatHz formats a frequency with a sensible SI prefix.
func FormatHz(hz float64) string {
	switch {
	case hz >= 1e9:
		return fmt.Sprintf("%.3g GHz", hz/1e9)
	case hz >= 1e6:
		return fmt.Sprintf("%.3g MHz", hz/1e6)
	case hz >= 1e3:
		return fmt.Sprintf("%.3g kHz", hz/1e3)
	default:
		return fmt.Sprintf("%.3g Hz", hz)
	}
}

// FormatSeconds formats a time interval with a sensible SI prefix.
func FormatSeconds(s float64) string {
	abs := s
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs == 0:
		return "0 s"
	case abs < 1e-6:
		return fmt.Sprintf("%.3g ns", s*1e9)
	case abs < 1e-3:
		return fmt.Sprintf("%.3g µs", s*1e6)
	case abs < 1:
		return fmt.Sprintf("%.3g ms", s*1e3)
	default:
		return fmt.Sprintf("%.3g s", s)
	}
}
