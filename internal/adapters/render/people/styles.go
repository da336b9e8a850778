package people

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	name   lipgloss.Style
	age    lipgloss.Style
	rule   lipgloss.Style
	empty  lipgloss.Style
	list   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		age:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		rule:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		empty:  lipgloss.NewStyle().Faint(true),
		list:   lipgloss.NewStyle().MarginTop(1),
	}
}
