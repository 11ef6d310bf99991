package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PhosphorGreen)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(GridGray).
			Italic(true).
			MarginBottom(1)
)

// StyledHelpPrinter renders a styled banner above kong's standard help so
// subcommand listings stay accurate.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		fmt.Fprintln(ctx.Stdout, helpTitleStyle.Render("tekwfm"))
		fmt.Fprintln(ctx.Stdout, helpDescStyle.Render("Decode Tektronix WFM v3 FastFrame captures for SRAS scan processing."))
		return kong.DefaultHelpPrinter(options, ctx)
	})
}
