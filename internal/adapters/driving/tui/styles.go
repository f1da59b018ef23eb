package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the chat view.
type Styles struct {
	Title    lipgloss.Style
	Status   lipgloss.Style
	Seeker   lipgloss.Style
	Guidance lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the saffron-tinted default theme.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Padding(0, 1),
		Seeker: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75")),
		Guidance: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
