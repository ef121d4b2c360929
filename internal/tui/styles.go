package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	user    lipgloss.Style
	bot     lipgloss.Style
	title   lipgloss.Style
	button  lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	status  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		user: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1A56DB", Dark: "#7AA2F7"}).
			Bold(true),
		bot: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#9ECE6A"}).
			Bold(true),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#E0AF68"}).
			Bold(true).
			Underline(true),
		button: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#BB9AF7"}),
		heading: lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#565F89"}),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#E0AF68"}),
	}
}
