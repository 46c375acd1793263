package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/NamanBalaji/tmodal/internal/repository"
	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

// HistoryItem renders a single dialog record given its width and selection state.
func HistoryItem(r *repository.Record, width int, selected bool) string {
	// --- Outcome Label ---
	var outcome string

	switch {
	case r.ClosedAt.IsZero():
		outcome = styles.OutcomeOpen.Render("● open")
	case r.Dismissed():
		outcome = styles.OutcomeDismissed.Render("⊘ dismissed")
	default:
		outcome = styles.OutcomePressed.Render("✔ " + r.Pressed)
	}

	// --- Line 1: Icon, Title or Body, Outcome ---
	heading := r.Title
	if heading == "" {
		heading = r.Body
	}
	if r.Icon != "" {
		heading = r.Icon + " " + heading
	}

	headingWidth := max(width-lipgloss.Width(outcome)-3, 8)
	heading = ansi.Truncate(heading, headingWidth, "…")

	padding := strings.Repeat(" ", max(width-lipgloss.Width(heading)-lipgloss.Width(outcome)-2, 1))
	line1 := heading + padding + outcome

	// --- Line 2: Buttons ---
	var buttons []string
	for i, label := range r.Buttons {
		b := "[" + label + "]"
		switch {
		case i >= r.Shown:
			b = styles.OutcomeOverflow.Render(b)
		case label == r.Pressed:
			b = styles.OutcomePressed.Render(b)
		}
		buttons = append(buttons, b)
	}

	line2 := strings.Join(buttons, " ")
	if r.Overflow() {
		line2 += styles.OutcomeOverflow.Render(fmt.Sprintf("  %d dropped", len(r.Buttons)-r.Shown))
	}
	if len(r.Buttons) == 0 {
		line2 = styles.MutedText.Render("no buttons")
	}

	// --- Line 3: Shown At, Open Duration ---
	info := r.ShownAt.Format("2006-01-02 15:04:05")
	if !r.ClosedAt.IsZero() {
		info += "  open " + formatDuration(r.ClosedAt.Sub(r.ShownAt))
	}
	line3 := styles.ListItemStyle.Faint(true).Render(info)

	// --- Combine and Style ---
	item := lipgloss.JoinVertical(lipgloss.Left, line1, line2, line3)
	if selected {
		return styles.SelectedItemStyle.Width(width).Render(item)
	}

	return styles.ListItemStyle.Width(width).Render(item)
}
