package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the shell chrome
type Styles struct {
	// Mode switcher
	ActiveMode   lipgloss.Style
	InactiveMode lipgloss.Style
	SwitcherBar  lipgloss.Style

	// Chrome
	Header    lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style

	// Text
	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	InfoText    lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		ActiveMode: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 1),

		InactiveMode: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1),

		SwitcherBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")),
	}
}
