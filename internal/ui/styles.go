package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	promptStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	destStyle      = lipgloss.NewStyle().Faint(true)
	matchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	highlightStyle = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	warnStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)
