package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style used by the TUI. Constructed once and
// passed by reference so panels never rebuild styles per frame.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Border   lipgloss.Style
	Section  lipgloss.Style

	Label         lipgloss.Style
	Value         lipgloss.Style
	SelectedLabel lipgloss.Style
	SelectedValue lipgloss.Style
	Muted         lipgloss.Style

	Button        lipgloss.Style
	ButtonHovered lipgloss.Style
	Danger        lipgloss.Style
	DangerHovered lipgloss.Style

	Command lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Status  lipgloss.Style
	URL     lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Section:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),

		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		SelectedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")).Bold(true),
		SelectedValue: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ButtonHovered: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Bold(true),
		Danger:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DangerHovered: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9")).Bold(true),

		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		URL:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Underline(true),
	}
}
