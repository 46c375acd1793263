package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NamanBalaji/tmodal/internal/dialog"
	"github.com/NamanBalaji/tmodal/internal/logger"
	"github.com/NamanBalaji/tmodal/internal/repository"
	"github.com/NamanBalaji/tmodal/internal/tui/components"
	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

// view represents the different screens in the TUI
type view int

const (
	mainView view = iota
	composeView
	historyView
)

const defaultMessageTimeout = 3 * time.Second

// HistoryStore lists recorded dialogs, newest first.
type HistoryStore interface {
	FindAll(limit int) ([]*repository.Record, error)
}

// Options configures the TUI model.
type Options struct {
	// History is optional. Without it the history view stays empty.
	History        HistoryStore
	HistoryLimit   int
	MessageTimeout time.Duration
}

// Model represents the main TUI state
type Model struct {
	manager *dialog.Manager
	widgets *Widgets
	history HistoryStore

	width          int
	height         int
	help           help.Model
	keys           keyMap
	activeView     view
	spinner        spinner.Model
	gauge          progress.Model
	compose        textinput.Model
	message        *messageModel
	scene          *scene
	messageTimeout time.Duration
	historyLimit   int
	records        []*repository.Record
	selectedIdx    int
	focus          int
	quitting       bool
}

// NewModel creates a TUI model driving widgets through the installed dialog manager.
func NewModel(widgets *Widgets, opts Options) (Model, error) {
	manager, err := dialog.Instance()
	if err != nil {
		return Model{}, err
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Green)

	gauge := progress.New(
		progress.WithWidth(20),
		progress.WithoutPercentage(),
		progress.WithSolidFill(string(styles.Blue)),
	)

	ti := textinput.New()
	ti.Placeholder = "Type the dialog text"
	ti.CharLimit = 280
	ti.Width = 60

	h := help.New()
	h.ShowAll = false

	timeout := opts.MessageTimeout
	if timeout <= 0 {
		timeout = defaultMessageTimeout
	}

	return Model{
		manager:        manager,
		widgets:        widgets,
		history:        opts.History,
		help:           h,
		keys:           newKeyMap(),
		activeView:     mainView,
		spinner:        s,
		gauge:          gauge,
		compose:        ti,
		message:        &messageModel{},
		scene:          &scene{},
		messageTimeout: timeout,
		historyLimit:   opts.HistoryLimit,
	}, nil
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return spinner.Tick
}

// Update handles input and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case m.manager.IsOpen():
			return m.updateDialog(msg)

		case m.activeView == composeView:
			return m.updateComposeView(msg)

		case m.activeView == historyView:
			return m.updateHistoryView(msg)

		default:
			return m.updateMainView(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.widgets.Panel.SetWidth(min(msg.Width-20, 60))

		return m, tea.ClearScreen

	case HistoryLoadedMsg:
		m.records = msg.Records
		m.selectedIdx = 0
		return m, nil

	case ErrorMsg:
		m.message.display(fmt.Sprintf("Error: %s", msg.Error.Error()), styles.Red)
		return m, m.expireMessage()

	case MessageTimeoutMsg:
		m.message.hide(msg.Seq)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateDialog routes keys to the open panel.
func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.widgets.activeCount()

	switch {
	case key.Matches(msg, m.keys.Left):
		if n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if n > 0 {
			m.focus = (m.focus + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.Press):
		if m.focus < n {
			m.widgets.Buttons[m.focus].Click()
		}
		return m, m.expireMessage()

	case key.Matches(msg, m.keys.Digit):
		idx := int(msg.String()[0] - '1')
		if err := m.manager.Press(idx); err != nil {
			logger.Debugf("Ignoring key %s: %v", msg.String(), err)
			return m, nil
		}
		return m, m.expireMessage()

	case key.Matches(msg, m.keys.Close):
		m.manager.Close()
		m.message.display("Dialog dismissed", styles.Peach)
		return m, m.expireMessage()

	case key.Matches(msg, m.keys.Scroll):
		return m, m.widgets.Panel.Update(msg)
	}

	return m, nil
}

func (m Model) updateMainView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.YesNoCancel):
		return m.show(m.yesNoCancelDialog())

	case key.Matches(msg, m.keys.Error):
		return m.show(m.errorDialog())

	case key.Matches(msg, m.keys.Spawn):
		return m.show(m.spawnDialog())

	case key.Matches(msg, m.keys.Overflow):
		return m.show(m.overflowDialog())

	case key.Matches(msg, m.keys.Compose):
		m.activeView = composeView
		cmd := m.compose.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.History):
		m.activeView = historyView
		return m, m.loadHistory()
	}

	return m, nil
}

func (m Model) updateComposeView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.activeView = mainView
		m.compose.Blur()
		m.compose.SetValue("")
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		text := strings.TrimSpace(m.compose.Value())
		m.activeView = mainView
		m.compose.Blur()
		m.compose.SetValue("")

		if text == "" {
			return m, nil
		}
		return m.show(m.composedDialog(text))

	default:
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd
	}
}

func (m Model) updateHistoryView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.History):
		m.activeView = mainView
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if len(m.records) > 0 {
			m.selectedIdx = min(m.selectedIdx+1, len(m.records)-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.records) > 0 {
			m.selectedIdx = max(m.selectedIdx-1, 0)
		}
		return m, nil
	}

	return m, nil
}

// show opens content in the panel. A capacity report still leaves the dialog open.
func (m Model) show(content dialog.Content) (tea.Model, tea.Cmd) {
	m.focus = 0

	err := m.manager.Show(content)
	switch {
	case err == nil:
		return m, nil

	case errors.Is(err, dialog.ErrCapacityExceeded):
		m.message.display(fmt.Sprintf("Only %d of %d buttons fit in the panel",
			m.manager.InUse(), len(content.Buttons())), styles.Red)

	default:
		m.message.display(fmt.Sprintf("Error: %s", err.Error()), styles.Red)
	}

	return m, m.expireMessage()
}

// expireMessage hides the current message after the message timeout.
func (m Model) expireMessage() tea.Cmd {
	if !m.message.visible {
		return nil
	}

	seq := m.message.seq
	return tea.Tick(m.messageTimeout, func(time.Time) tea.Msg {
		return MessageTimeoutMsg{Seq: seq}
	})
}

func (m Model) loadHistory() tea.Cmd {
	store, limit := m.history, m.historyLimit

	return func() tea.Msg {
		if store == nil {
			return HistoryLoadedMsg{}
		}

		records, err := store.FindAll(limit)
		if err != nil {
			return ErrorMsg{Error: fmt.Errorf("failed to load history: %w", err)}
		}

		return HistoryLoadedMsg{Records: records}
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Closing tmodal...\n"
	}

	contentWidth := m.width - 4
	if contentWidth > 90 {
		contentWidth = 90
	}
	if contentWidth < 40 {
		contentWidth = 40
	}

	var content string
	switch {
	case m.manager.IsOpen():
		content = m.renderDialogView(contentWidth)
	case m.activeView == composeView:
		content = m.renderComposeView(contentWidth)
	case m.activeView == historyView:
		content = m.renderHistoryView(contentWidth)
	default:
		content = m.renderMainView(contentWidth)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderMainView(contentWidth int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Width(contentWidth).Render("Terminal Modal Dialogs (tmodal)"))
	s.WriteString("\n\n")

	s.WriteString(sectionStyle.Width(contentWidth).Render(
		"Open a dialog with one of the keys below. Every button runs its action and closes the panel."))
	s.WriteString("\n\n")

	s.WriteString(sectionStyle.Render("Cubes spawned: " + countStyle.Render(fmt.Sprint(m.scene.spawned))))
	s.WriteString("\n\n")

	s.WriteString(m.renderStatusBar())
	s.WriteString(m.renderMessage())
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys.mainHelp()))

	return s.String()
}

func (m Model) renderDialogView(contentWidth int) string {
	var s strings.Builder

	panel := m.widgets.Panel.View(m.widgets.Buttons, m.focus)
	s.WriteString(lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, panel))
	s.WriteString("\n\n")
	s.WriteString(m.renderStatusBar())
	s.WriteString(m.renderMessage())
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys.dialogHelp()))

	return s.String()
}

func (m Model) renderComposeView(contentWidth int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Width(contentWidth).Render("Compose Dialog"))
	s.WriteString("\n\n")

	form := lipgloss.JoinHorizontal(lipgloss.Center,
		formLabelStyle.Render("Text:"),
		formInputStyle.Render(m.compose.View()),
	)
	s.WriteString(lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(form))
	s.WriteString("\n\n")
	s.WriteString(m.help.View(m.keys.composeHelp()))

	return s.String()
}

func (m Model) renderHistoryView(contentWidth int) string {
	var s strings.Builder

	s.WriteString(headerStyle.Width(contentWidth).Render("Dialog History"))
	s.WriteString("\n\n")
	s.WriteString(components.RenderHistoryList(m.records, m.selectedIdx, contentWidth, max(m.height-10, 4)))
	s.WriteString(m.renderMessage())
	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys.historyHelp()))

	return s.String()
}

// renderStatusBar shows whether a dialog is open and how many slots it uses.
func (m Model) renderStatusBar() string {
	inUse, capacity := m.manager.InUse(), m.manager.Capacity()

	state := statusClosedStyle.Render("● closed")
	if m.manager.IsOpen() {
		state = statusOpenStyle.Render(m.spinner.View() + "open")
	}

	slots := fmt.Sprintf("slots %d/%d ", inUse, capacity)

	return statusBarStyle.Render(state + "  " + slots + m.gauge.ViewAs(float64(inUse)/float64(capacity)))
}

func (m Model) renderMessage() string {
	if !m.message.visible {
		return ""
	}

	return "\n" + messageStyle.BorderForeground(m.message.color).Render(m.message.message)
}
