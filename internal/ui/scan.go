// Package ui holds the Bubbletea model for batch scan progress.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sraslab/tekwfm/internal/cli"
)

// ScanProgress is sent after each capture in the batch is processed.
type ScanProgress struct {
	File       int
	TotalFiles int
	Path       string
	Elapsed    time.Duration
}

// ScanComplete signals the end of the batch.
type ScanComplete struct {
	Files    int
	Pixels   int
	Output   string
	Duration time.Duration
	Err      error
}

// scanQuitMsg is sent when it's time to quit after showing completion
type scanQuitMsg struct{}

// ScanModel implements the Bubbletea model for the scan batch.
type ScanModel struct {
	progressBar progress.Model
	last        ScanProgress
	complete    *ScanComplete

	startTime       time.Time
	width           int
	completionDelay time.Duration
}

// NewScanModel creates the scan progress UI model.
func NewScanModel() *ScanModel {
	p := progress.New(
		progress.WithGradient(string(cli.PhosphorDim), string(cli.PhosphorGreen)),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return &ScanModel{
		progressBar:     p,
		startTime:       time.Now(),
		completionDelay: 2 * time.Second,
	}
}

// Init initializes the model
func (m *ScanModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progressBar.Width = min(msg.Width-30, 50)
		return m, nil

	case ScanProgress:
		m.last = msg
		return m, nil

	case ScanComplete:
		m.complete = &msg
		return m, tea.Tick(m.completionDelay, func(t time.Time) tea.Msg {
			return scanQuitMsg{}
		})

	case scanQuitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.complete != nil {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *ScanModel) View() string {
	var s strings.Builder

	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.PhosphorGreen).Render("tekwfm"))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(cli.TriggerAmber).Render("Processing SRAS scan"))
	s.WriteString("\n\n")

	if m.complete != nil {
		m.renderComplete(&s)
	} else {
		m.renderProgress(&s)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cli.PhosphorDim).
		Padding(1, 2).
		Render(s.String())
}

func (m *ScanModel) renderProgress(s *strings.Builder) {
	if m.last.TotalFiles == 0 {
		s.WriteString(lipgloss.NewStyle().Faint(true).Render("Scanning directory..."))
		return
	}

	percent := float64(m.last.File) / float64(m.last.TotalFiles)
	s.WriteString("Progress: ")
	s.WriteString(m.progressBar.ViewAs(percent))
	s.WriteString(fmt.Sprintf("  %d%%", int(percent*100)))
	s.WriteString("\n\n")

	elapsed := m.last.Elapsed
	if elapsed == 0 {
		elapsed = time.Since(m.startTime)
	}
	var eta time.Duration
	if percent > 0 {
		eta = time.Duration(float64(elapsed)/percent) - elapsed
	}

	s.WriteString(lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("Line %d of %d  │  Elapsed: %s  │  ETA: %s",
			m.last.File, m.last.TotalFiles,
			cli.FormatDuration(elapsed), cli.FormatDuration(eta))))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Faint(true).Italic(true).Render(filepath.Base(m.last.Path)))
}

func (m *ScanModel) renderComplete(s *strings.Builder) {
	if m.complete.Err != nil {
		s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.AlarmRed).Render("✗ Scan failed"))
		s.WriteString("\n\n")
		s.WriteString(m.complete.Err.Error())
		return
	}

	s.WriteString("Progress: ")
	s.WriteString(m.progressBar.ViewAs(1.0))
	s.WriteString("  100%")
	s.WriteString("\n\n")

	s.WriteString(lipgloss.NewStyle().Bold(true).Foreground(cli.PhosphorGreen).Render("✓ Scan complete"))
	s.WriteString("\n\n")

	label := lipgloss.NewStyle().Faint(true)
	s.WriteString(label.Render("Lines:   "))
	s.WriteString(fmt.Sprintf("%d\n", m.complete.Files))
	s.WriteString(label.Render("Pixels:  "))
	s.WriteString(fmt.Sprintf("%d\n", m.complete.Pixels))
	s.WriteString(label.Render("Output:  "))
	s.WriteString(m.complete.Output)
	s.WriteString("\n")
	s.WriteString(label.Render("Time:    "))
	s.WriteString(cli.FormatDuration(m.complete.Duration))
}
