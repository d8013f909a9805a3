package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func renderHeader(width int, title string) string {
	logo := `▄▖▄▖▄▖▄▖▄▖▄▖▄▖▄▖▄▖
▙▌▌▌▌ ▙▖▌ ▙▘▌▌▙▖▐
▌ ▛▌▙▌▙▖▙▖▌▌▛▌▌  ▌`

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)
	if title == "" {
		return headerPadding.Render(logoRendered)
	}

	gap := width - 2 - lipgloss.Width(logoRendered) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		titleStyle.Render(title),
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)
	return headerPadding.Render(header)
}
