package ui

import "github.com/charmbracelet/lipgloss"

// "Emerald ledger" palette, matching the report colors.
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#64748B"}
	highlight = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}
	warning   = lipgloss.AdaptiveColor{Light: "#F05D5E", Dark: "#F59E0B"}
	danger    = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#F43F5E"}

	titleStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 2).
			Margin(0, 1)

	cardLabelStyle = lipgloss.NewStyle().Foreground(subtle)

	dimStyle    = lipgloss.NewStyle().Foreground(subtle)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	paidStyle   = lipgloss.NewStyle().Foreground(highlight)
	noticeStyle = lipgloss.NewStyle().Foreground(warning)
	dangerStyle = lipgloss.NewStyle().Foreground(danger)
)

func helpStyle(s string) string {
	return dimStyle.Render(s)
}
