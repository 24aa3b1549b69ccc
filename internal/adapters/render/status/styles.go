package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	column  lipgloss.Style
	cell    lipgloss.Style
	running lipgloss.Style
	stopped lipgloss.Style
	logs    lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		column:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).PaddingRight(2),
		cell:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingRight(2),
		running: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")).PaddingRight(2),
		stopped: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).PaddingRight(2),
		logs:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")).PaddingRight(2),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
