package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	form    lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	help    lipgloss.Style
	spinner lipgloss.Style
}

func newStyles() styles {
	return styles{
		form:    lipgloss.NewStyle().MarginTop(1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(6),
		focused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(6),
		help:    lipgloss.NewStyle().MarginTop(1).Faint(true),
		spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
