package dialog

import "github.com/google/uuid"

// Observer is notified of dialog lifecycle events, one at a time and in the
// order the dialog state changed. Calls happen outside the manager lock, but an
// observer must not call Show, Close or Press.
type Observer interface {
	DialogShown(id uuid.UUID, content Content, allocated int)
	ButtonPressed(id uuid.UUID, index int, label string)
	DialogClosed(id uuid.UUID)
}

type nopObserver struct{}

func (nopObserver) DialogShown(uuid.UUID, Content, int)   {}
func (nopObserver) ButtonPressed(uuid.UUID, int, string) {}
func (nopObserver) DialogClosed(uuid.UUID)                {}

// multiObserver fans events out to several observers in order.
type multiObserver []Observer

func (m multiObserver) DialogShown(id uuid.UUID, content Content, allocated int) {
	for _, o := range m {
		o.DialogShown(id, content, allocated)
	}
}

func (m multiObserver) ButtonPressed(id uuid.UUID, index int, label string) {
	for _, o := range m {
		o.ButtonPressed(id, index, label)
	}
}

func (m multiObserver) DialogClosed(id uuid.UUID) {
	for _, o := range m {
		o.DialogClosed(id)
	}
}
