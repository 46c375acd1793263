package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NamanBalaji/tmodal/internal/dialog"
	"github.com/NamanBalaji/tmodal/internal/tui/components"
	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

const (
	panelMaxBodyLines = 10
	buttonMaxLabel    = 16
)

// PanelView is the terminal modal panel. It implements dialog.PanelWidget.
type PanelView struct {
	visible bool
	title   string
	body    string
	icon    dialog.Icon
	width   int

	// body scrolls when it is taller than panelMaxBodyLines
	viewport viewport.Model
}

// NewPanelView creates a hidden panel.
func NewPanelView() *PanelView {
	vp := viewport.New(40, panelMaxBodyLines)
	vp.Style = styles.PanelBody

	return &PanelView{
		width:    40,
		viewport: vp,
	}
}

func (p *PanelView) SetVisible(visible bool)  { p.visible = visible }
func (p *PanelView) SetTitle(title string)    { p.title = title }
func (p *PanelView) SetIcon(icon dialog.Icon) { p.icon = icon }

func (p *PanelView) SetBodyText(text string) {
	p.body = text
	p.layout()
	p.viewport.GotoTop()
}

func (p *PanelView) Visible() bool     { return p.visible }
func (p *PanelView) Title() string     { return p.title }
func (p *PanelView) Body() string      { return p.body }
func (p *PanelView) Icon() dialog.Icon { return p.icon }

// SetWidth sets the inner width of the panel.
func (p *PanelView) SetWidth(width int) {
	p.width = max(width, 20)
	p.layout()
}

// Update scrolls the body.
func (p *PanelView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// layout wraps the body to the panel width and sizes the viewport to fit it.
func (p *PanelView) layout() {
	bodyWidth := p.width
	if p.icon != "" {
		bodyWidth -= lipgloss.Width(string(p.icon)) + 1
	}

	wrapped := lipgloss.NewStyle().Width(bodyWidth).Render(p.body)

	p.viewport.Width = bodyWidth
	p.viewport.Height = min(max(lipgloss.Height(wrapped), 1), panelMaxBodyLines)
	p.viewport.SetContent(wrapped)
}

// View renders the panel with the active buttons, highlighting focused.
func (p *PanelView) View(buttons []*ButtonView, focused int) string {
	if !p.visible {
		return ""
	}

	p.layout()

	var s strings.Builder

	// Header
	if p.title != "" {
		s.WriteString(styles.PanelTitle.Width(p.width).Align(lipgloss.Center).Render(p.title))
		s.WriteString("\n\n")
	}

	// Message
	body := p.viewport.View()
	if p.icon != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, styles.PanelIcon.Render(string(p.icon)), body)
	}
	s.WriteString(body)

	if !p.viewport.AtBottom() {
		s.WriteString("\n")
		s.WriteString(styles.MutedText.Width(p.width).Align(lipgloss.Right).Render("↓ more"))
	}

	// Buttons
	var labels []string
	for _, b := range buttons {
		if b.Active() {
			labels = append(labels, b.Label())
		}
	}

	if len(labels) > 0 {
		s.WriteString("\n\n")
		row := components.ButtonRow(labels, focused, buttonMaxLabel)
		s.WriteString(lipgloss.PlaceHorizontal(p.width, lipgloss.Center, row))
	}

	return styles.Panel.Render(s.String())
}

// ButtonView is one pooled terminal button. It implements dialog.SlotWidget.
type ButtonView struct {
	label   string
	active  bool
	handler func()
}

func (b *ButtonView) SetActive(active bool)     { b.active = active }
func (b *ButtonView) SetLabel(label string)     { b.label = label }
func (b *ButtonView) BindClickHandler(h func()) { b.handler = h }
func (b *ButtonView) Active() bool              { return b.active }
func (b *ButtonView) Label() string             { return b.label }

// Click fires the bound handler. It reports false when the button is inactive or unbound.
func (b *ButtonView) Click() bool {
	if !b.active || b.handler == nil {
		return false
	}

	b.handler()

	return true
}

// Widgets are the terminal widgets a dialog.Manager drives.
type Widgets struct {
	Panel   *PanelView
	Buttons []*ButtonView
}

// NewWidgets creates a hidden panel and n inactive buttons.
func NewWidgets(n int) *Widgets {
	w := &Widgets{
		Panel:   NewPanelView(),
		Buttons: make([]*ButtonView, n),
	}

	for i := range w.Buttons {
		w.Buttons[i] = &ButtonView{}
	}

	return w
}

// SlotWidgets returns the buttons as dialog slot widgets, in slot order.
func (w *Widgets) SlotWidgets() []dialog.SlotWidget {
	slots := make([]dialog.SlotWidget, len(w.Buttons))
	for i, b := range w.Buttons {
		slots[i] = b
	}

	return slots
}

// activeCount returns the number of active buttons. Slots fill from 0, so they are the first ones.
func (w *Widgets) activeCount() int {
	n := 0
	for _, b := range w.Buttons {
		if b.Active() {
			n++
		}
	}

	return n
}
