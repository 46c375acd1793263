package dialog

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/NamanBalaji/tmodal/internal/logger"
)

// Manager shows one modal panel at a time and recycles a fixed pool of button slots.
//
// A dialog is opened with Show and closed with Close or by pressing any of its
// buttons: every button action is wrapped so that it closes the dialog after it runs.
type Manager struct {
	mu sync.Mutex
	// eventsMu is taken before mu is released so observers see events in state order.
	eventsMu sync.Mutex

	panel     PanelWidget
	pool      *Pool
	open      bool
	pressed   bool
	requestID uuid.UUID
	observer  Observer
}

// Option configures a Manager.
type Option func(*Manager)

// WithObserver registers an observer for dialog lifecycle events. It may be given more than once.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		if o == nil {
			return
		}

		switch cur := m.observer.(type) {
		case nopObserver:
			m.observer = o
		case multiObserver:
			m.observer = append(cur, o)
		default:
			m.observer = multiObserver{cur, o}
		}
	}
}

// New creates a Manager driving panel and one button slot per slot widget.
// The pool capacity is len(slots) and never changes.
func New(panel PanelWidget, slots []SlotWidget, opts ...Option) (*Manager, error) {
	if panel == nil {
		logger.Errorf("No panel widget given: a modal panel needs a panel to draw on")
		return nil, fmt.Errorf("nil panel widget: %w", ErrNotConfigured)
	}

	if len(slots) == 0 {
		logger.Errorf("No slot widgets given: a modal panel needs at least one button slot")
		return nil, fmt.Errorf("no slot widgets: %w", ErrNotConfigured)
	}

	for i, s := range slots {
		if s == nil {
			return nil, fmt.Errorf("nil slot widget #%d: %w", i, ErrNotConfigured)
		}
	}

	m := &Manager{
		panel:    panel,
		pool:     NewPool(slots),
		observer: nopObserver{},
	}

	for _, opt := range opts {
		opt(m)
	}

	m.hide()

	logger.Debugf("Modal manager created with %d button slots", m.pool.Cap())

	return m, nil
}

// Show opens a dialog displaying content. Buttons are bound to slots in content order.
//
// When content has more buttons than the pool holds, the buttons that fit are
// shown together with the text and an error wrapping ErrCapacityExceeded is
// returned; the dialog is open in that case.
func (m *Manager) Show(content Content) error {
	m.mu.Lock()

	if m.open {
		m.mu.Unlock()
		return fmt.Errorf("show %q: %w", content.Body(), ErrDialogOpen)
	}

	id := uuid.New()
	m.requestID = id

	buttons := content.Buttons()

	var overflow error
	for _, b := range buttons {
		if _, err := m.addButton(id, b); err != nil {
			overflow = fmt.Errorf("dialog %s: %d of %d buttons shown: %w", id, m.pool.InUse(), len(buttons), err)
			break
		}
	}

	m.setBody(content)
	allocated := m.pool.InUse()

	if overflow != nil {
		logger.Errorf("You asked for %d buttons, only %d are allowed: %v", len(buttons), m.pool.Cap(), overflow)
	}

	logger.Debugf("Dialog %s shown with %d buttons", id, allocated)
	m.emit(func(o Observer) {
		o.DialogShown(id, content, allocated)
	})

	return overflow
}

// Close hides the panel and releases every slot. Closing a closed dialog does nothing.
func (m *Manager) Close() {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return
	}

	m.closeLocked(m.requestID)
}

// Press fires the button bound to slot idx, as if the slot widget had been clicked.
func (m *Manager) Press(idx int) error {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return fmt.Errorf("press #%d on closed dialog: %w", idx, ErrSlotInactive)
	}

	handler, err := m.pool.handler(idx)
	m.mu.Unlock()

	if err != nil {
		return err
	}

	handler()

	return nil
}

// IsOpen reports whether a dialog is showing.
func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open
}

// RequestID returns the ID of the open dialog, or uuid.Nil when closed.
func (m *Manager) RequestID() uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.requestID
}

// Capacity returns the pool size.
func (m *Manager) Capacity() int {
	return m.pool.Cap()
}

// InUse returns the number of slots holding a button.
func (m *Manager) InUse() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pool.InUse()
}

// Slots returns a snapshot of the pool.
func (m *Manager) Slots() []Slot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pool.Slots()
}

// addButton binds b to the next free slot. Must be called with m.mu held, before setBody.
func (m *Manager) addButton(id uuid.UUID, b ButtonSpec) (int, error) {
	idx := m.pool.InUse()
	return m.pool.allocateNext(b.DisplayLabel(), m.wrap(id, idx, b.Label(), b.Action()))
}

// setBody makes the panel visible with content's text and icon. Must be called with m.mu held.
func (m *Manager) setBody(content Content) {
	m.panel.SetVisible(true)
	m.panel.SetTitle(content.Title())
	m.panel.SetBodyText(content.Body())
	m.panel.SetIcon(content.Icon())

	m.open = true
}

// hide resets the panel and pool to the closed state. Must be called with m.mu held.
func (m *Manager) hide() {
	m.panel.SetVisible(false)
	m.panel.SetIcon("")
	m.panel.SetBodyText("")
	m.panel.SetTitle("")

	m.pool.resetAll()

	m.open = false
	m.pressed = false
	m.requestID = uuid.Nil
}

// wrap bundles action with closing the dialog it was shown in.
// Only the first press of a dialog runs; later presses and clicks on a dialog
// that has since been closed are ignored.
func (m *Manager) wrap(id uuid.UUID, idx int, label string, action Action) func() {
	return func() {
		m.mu.Lock()
		if !m.open || m.requestID != id || m.pressed {
			m.mu.Unlock()
			logger.Debugf("Ignoring click on %q from stale dialog %s", label, id)
			return
		}
		m.pressed = true

		logger.Debugf("Dialog %s: button #%d %q pressed", id, idx, label)
		m.emit(func(o Observer) {
			o.ButtonPressed(id, idx, label)
		})

		if action != nil {
			action()
		}

		m.closeRequest(id)
	}
}

// closeRequest closes the dialog only if it is still the one identified by id.
func (m *Manager) closeRequest(id uuid.UUID) {
	m.mu.Lock()
	if !m.open || m.requestID != id {
		m.mu.Unlock()
		return
	}

	m.closeLocked(id)
}

// closeLocked hides the open dialog id. Must be called with m.mu held; it releases m.mu.
func (m *Manager) closeLocked(id uuid.UUID) {
	m.hide()

	logger.Debugf("Dialog %s closed", id)
	m.emit(func(o Observer) {
		o.DialogClosed(id)
	})
}

// emit hands event to the observer. Must be called with m.mu held; it releases m.mu.
// Observers must not call Show, Close or Press.
func (m *Manager) emit(event func(Observer)) {
	m.eventsMu.Lock()
	m.mu.Unlock()
	defer m.eventsMu.Unlock()

	event(m.observer)
}
