package ui

import "github.com/charmbracelet/lipgloss"

// ------- Lip Gloss styles for the interactive view, rebuilt per theme -------
var (
	titleStyle    lipgloss.Style
	successStyle  lipgloss.Style
	pendingStyle  lipgloss.Style
	accentStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	errorStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
	helpStyle     lipgloss.Style
	sectionStyle  lipgloss.Style
	borderStyle   lipgloss.Style
)

func applyStyles(t Theme) {
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.TitleColor)
	successStyle = lipgloss.NewStyle().Foreground(t.SuccessColor)
	pendingStyle = lipgloss.NewStyle().Foreground(t.PendingColor)
	accentStyle = lipgloss.NewStyle().Foreground(t.AccentColor)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(t.ErrorColor).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle = lipgloss.NewStyle().Faint(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(t.AccentColor).MarginTop(1)
	borderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
