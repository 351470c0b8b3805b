package ui

import "github.com/charmbracelet/lipgloss"

var (
	neonCyan    = lipgloss.Color("#00FFFF")
	neonMagenta = lipgloss.Color("#FF00FF")
	neonGreen   = lipgloss.Color("#39FF14")
	neonYellow  = lipgloss.Color("#FFFF00")
	errorRed    = lipgloss.Color("#FF0000")
	dimWhite    = lipgloss.Color("#B0B0B0")
	darkBg      = lipgloss.Color("#0A0E27")
)

// summaryStyles are bound to one renderer so color output follows its writer
type summaryStyles struct {
	panel   lipgloss.Style
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	missing lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

func newSummaryStyles(r *lipgloss.Renderer) summaryStyles {
	return summaryStyles{
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(neonMagenta).
			Padding(0, 2),
		title: r.NewStyle().
			Background(neonMagenta).
			Foreground(darkBg).
			Bold(true).
			Padding(0, 1),
		section: r.NewStyle().
			Foreground(neonCyan).
			Bold(true).
			MarginTop(1),
		label: r.NewStyle().
			Foreground(neonCyan).
			Width(16),
		value: r.NewStyle().
			Foreground(neonYellow),
		missing: r.NewStyle().
			Foreground(dimWhite).
			Faint(true),
		success: r.NewStyle().
			Foreground(neonGreen).
			Bold(true),
		failure: r.NewStyle().
			Foreground(errorRed).
			Bold(true),
	}
}
