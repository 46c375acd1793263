package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/NamanBalaji/tmodal/internal/dialog"
	"github.com/NamanBalaji/tmodal/internal/tui/styles"
)

// scene is the state the demo dialogs act on.
type scene struct {
	spawned int
}

func (s *scene) spawn() { s.spawned++ }

// messageModel is the notification line shown under the screen content.
// Button actions run outside of Update, so the model shares it by pointer.
type messageModel struct {
	visible bool
	message string
	color   lipgloss.Color
	seq     int
}

// display shows text until the next message or its timeout.
func (d *messageModel) display(text string, color lipgloss.Color) {
	d.message = text
	d.color = color
	d.visible = true
	d.seq++
}

// hide hides the message shown as seq. Newer messages stay.
func (d *messageModel) hide(seq int) {
	if seq == d.seq {
		d.visible = false
	}
}

func (m Model) displayAction(text string) dialog.Action {
	msg := m.message
	return func() {
		msg.display(text, styles.Green)
	}
}

func (m Model) yesNoCancelDialog() dialog.Content {
	return dialog.NewContent("Test the YNC dialog box",
		dialog.WithTitle("Question"),
		dialog.WithButton("YES", m.displayAction("Button One Pressed")),
		dialog.WithButton("NO", m.displayAction("Button Two Pressed")),
		dialog.WithButton("CANCEL", m.displayAction("Button Three Pressed")),
	)
}

func (m Model) errorDialog() dialog.Content {
	return dialog.NewContent("You have encountered an error",
		dialog.WithTitle("Error"),
		dialog.WithIcon("⚠"),
		dialog.WithButton("OK", m.displayAction("Button One Pressed")),
	)
}

func (m Model) spawnDialog() dialog.Content {
	msg, sc := m.message, m.scene

	return dialog.NewContent("Do you wish to instantiate a cube with a Lambda function?",
		dialog.WithTitle("Spawn"),
		dialog.WithButton("YES", func() {
			sc.spawn()
			msg.display(fmt.Sprintf("Cube #%d spawned", sc.spawned), styles.Green)
		}),
		dialog.WithButton("NO", nil),
	)
}

// overflowDialog asks for one button more than the panel holds.
func (m Model) overflowDialog() dialog.Content {
	n := m.manager.Capacity() + 1

	buttons := make([]dialog.ButtonSpec, n)
	for i := range buttons {
		buttons[i] = dialog.NewButton(fmt.Sprintf("Option %d", i+1), m.displayAction(fmt.Sprintf("Option %d Pressed", i+1)))
	}

	return dialog.NewContent(fmt.Sprintf("This dialog asks for %d buttons.", n),
		dialog.WithTitle("Overflow"),
		dialog.WithButtons(buttons...),
	)
}

func (m Model) composedDialog(text string) dialog.Content {
	return dialog.NewContent(text,
		dialog.WithTitle("Message"),
		dialog.WithButton("OK", m.displayAction("Message acknowledged")),
		dialog.WithButton("CANCEL", nil),
	)
}
