package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

// ButtonRow renders labels left to right, prefixed by their 1-based shortcut.
// Labels wider than maxLabel cells are truncated.
func ButtonRow(labels []string, focused, maxLabel int) string {
	if len(labels) == 0 {
		return ""
	}

	buttons := make([]string, 0, len(labels)*2)
	for i, label := range labels {
		if maxLabel > 0 {
			label = ansi.Truncate(label, maxLabel, "…")
		}

		style := styles.Button
		if i == focused {
			style = styles.ButtonFocused
		}

		shortcut := styles.ButtonShortcut.Render(strconv.Itoa(i+1) + " ")
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, shortcut+style.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}
