package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	hoverFg   = lipgloss.Color("#FFA500")
	frameFg   = lipgloss.Color("#2DD4BF")
	borderCol = lipgloss.Color("#243141")

	appStyle      = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(baseDimFg)
	selectedStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	hoverStyle    = lipgloss.NewStyle().Foreground(hoverFg)
	frameStyle    = lipgloss.NewStyle().Foreground(frameFg)
)
