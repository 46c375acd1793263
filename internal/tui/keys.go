package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// dialog
	Left   key.Binding
	Right  key.Binding
	Press  key.Binding
	Digit  key.Binding
	Close  key.Binding
	Scroll key.Binding

	// main screen
	YesNoCancel key.Binding
	Error       key.Binding
	Spawn       key.Binding
	Overflow    key.Binding
	Compose     key.Binding
	History     key.Binding
	Quit        key.Binding

	// history and compose
	Up      key.Binding
	Down    key.Binding
	Back    key.Binding
	Confirm key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←/shift+tab", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→/tab", "next"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
		Digit: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "press n-th"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll text"),
		),
		YesNoCancel: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes/no/cancel"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error"),
		),
		Spawn: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spawn"),
		),
		Overflow: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overflow"),
		),
		Compose: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compose"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show"),
		),
	}
}

// bindings is a help.KeyMap over a fixed list of bindings.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) dialogHelp() bindings {
	return bindings{k.Left, k.Right, k.Press, k.Digit, k.Close}
}

func (k keyMap) mainHelp() bindings {
	return bindings{k.YesNoCancel, k.Error, k.Spawn, k.Overflow, k.Compose, k.History, k.Quit}
}

func (k keyMap) historyHelp() bindings {
	return bindings{k.Up, k.Down, k.Back}
}

func (k keyMap) composeHelp() bindings {
	return bindings{k.Confirm, k.Back}
}
