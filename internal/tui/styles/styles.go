package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Overlay0 = lipgloss.Color("#6c7086")
	Subtext0 = lipgloss.Color("#a6adc8")
	Text     = lipgloss.Color("#cdd6f4")
	Lavender = lipgloss.Color("#b4befe")
	Blue     = lipgloss.Color("#89b4fa")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Teal     = lipgloss.Color("#94e2d5")
)

// Panel styles
var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Lavender).
		Padding(1, 2)

	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Mauve)

	PanelIcon = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true).
			MarginRight(1)

	PanelBody = lipgloss.NewStyle().
			Foreground(Text)
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(Text).
		Background(Surface0).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 2)

	ButtonShortcut = lipgloss.NewStyle().
			Foreground(Overlay0)
)

// List styles
var (
	ListItemStyle = lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Lavender).
				Bold(true).
				Padding(0, 1)

	MutedText = lipgloss.NewStyle().Foreground(Subtext0)
)

// History outcome styles
var (
	OutcomePressed = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	OutcomeDismissed = lipgloss.NewStyle().
				Foreground(Peach).
				Bold(true)

	OutcomeOpen = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)

	OutcomeOverflow = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)
