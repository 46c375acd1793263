package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

// Styles
var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Yellow).
			Background(styles.Surface0).
			Padding(1, 2).
			Width(80).
			Align(lipgloss.Center)

	// Main screen styles
	sectionStyle = lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Padding(0, 2)

	countStyle = lipgloss.NewStyle().
			Foreground(styles.Teal).
			Bold(true)

	// Status bar styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Padding(0, 1)

	statusOpenStyle = lipgloss.NewStyle().
			Foreground(styles.Green).
			Bold(true)

	statusClosedStyle = lipgloss.NewStyle().
				Foreground(styles.Overlay0)

	// Compose form styles
	formLabelStyle = lipgloss.NewStyle().
			Foreground(styles.Text).
			MarginRight(1)

	formInputStyle = lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0).
			Padding(0, 1)

	// Notification styles
	messageStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Lavender).
			Width(60).
			Align(lipgloss.Center).
			MaxWidth(80)
)
