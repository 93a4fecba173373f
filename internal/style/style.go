// Package style provides consistent terminal styling for the physiquist CLI.
package style

import "github.com/charmbracelet/lipgloss"

var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMute = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorInfo = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

var (
	// Success style for results (green)
	Success = lipgloss.NewStyle().
		Foreground(colorPass).
		Bold(true)

	// Error style for failures (red)
	Error = lipgloss.NewStyle().
		Foreground(colorFail).
		Bold(true)

	// Info style for formula names and headings (blue)
	Info = lipgloss.NewStyle().
		Foreground(colorInfo)

	// Dim style for secondary information (gray)
	Dim = lipgloss.NewStyle().
		Foreground(colorMute)

	Bold = lipgloss.NewStyle().
		Bold(true)

	ErrorPrefix = Error.Render("✗")
	ArrowPrefix = Info.Render("→")
)
