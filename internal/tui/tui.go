package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NamanBalaji/tmodal/internal/repository"
)

// Message types for the TUI
type (
	// HistoryLoadedMsg is sent when the dialog history is loaded
	HistoryLoadedMsg struct {
		Records []*repository.Record
	}

	// ErrorMsg is sent when an error occurs
	ErrorMsg struct {
		Error error
	}

	// MessageTimeoutMsg is sent when the notification with sequence Seq should be hidden
	MessageTimeoutMsg struct {
		Seq int
	}
)

// Run starts the TUI application on the given widgets. The dialog manager
// driving them must already be installed with dialog.Install.
func Run(widgets *Widgets, opts Options) error {
	model, err := NewModel(widgets, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
