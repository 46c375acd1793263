package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/NamanBalaji/tmodal/internal/repository"
	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

// RenderHistoryList displays the list of dialog records.
func RenderHistoryList(records []*repository.Record, selected int, width, height int) string {
	if len(records) == 0 {
		return renderEmptyView(width, height)
	}

	var rows []string
	// Each item takes 3 lines + 1 separator
	itemHeight := 4

	visibleCount := height / itemHeight
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := selected - (visibleCount / 2)
	if start < 0 {
		start = 0
	}

	end := start + visibleCount
	if end > len(records) {
		end = len(records)
	}

	for i := start; i < end; i++ {
		item := HistoryItem(records[i], width-4, i == selected)
		rows = append(rows, item)
	}

	listContent := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if start > 0 {
		upIndicator := lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Align(lipgloss.Center).
			Width(width).
			Render("↑ more above")
		listContent = lipgloss.JoinVertical(lipgloss.Top, upIndicator, listContent)
	}

	if end < len(records) {
		downIndicator := lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Align(lipgloss.Center).
			Width(width).
			Render("↓ more below")
		listContent = lipgloss.JoinVertical(lipgloss.Bottom, listContent, downIndicator)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(listContent)
}

// renderEmptyView displays the logo and instructions when no dialog was shown yet.
func renderEmptyView(width, height int) string {
	logo := []string{
		"╭────────────────────╮",
		"│  ⚠  tmodal         │",
		"│                    │",
		"│  [ YES ]  [ NO ]   │",
		"╰────────────────────╯",
	}
	colors := []lipgloss.Color{
		styles.Blue, styles.Mauve, styles.Red,
		styles.Peach, styles.Yellow,
	}

	var lines []string

	for i, line := range logo {
		styled := lipgloss.NewStyle().Foreground(colors[i]).Render(line)
		lines = append(lines, styled)
	}

	subtitle := lipgloss.NewStyle().Foreground(styles.Text).Italic(true).Render("No dialogs shown yet")
	instruction := lipgloss.NewStyle().Foreground(styles.Subtext0).Render("Press 'esc' to go back and open one")
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	content = lipgloss.JoinVertical(lipgloss.Center, content, "", subtitle, "", instruction)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// formatDuration renders d with a precision that suits how long a dialog stays open.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Truncate(time.Second).String()
	}
}
