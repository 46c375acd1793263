package dialog

import "fmt"

// Slot is a snapshot of one pooled button.
type Slot struct {
	Index  int
	Label  string
	Active bool
}

type slot struct {
	widget  SlotWidget
	label   string
	handler func()
	active  bool
}

// Pool is a fixed-size ordered set of reusable button slots.
// Slots are filled from index 0 upwards and are only released all together.
type Pool struct {
	slots []slot
	next  int
}

// NewPool creates a pool with one slot per widget. Every widget starts inactive and unbound.
func NewPool(widgets []SlotWidget) *Pool {
	p := &Pool{slots: make([]slot, len(widgets))}

	for i, w := range widgets {
		p.slots[i].widget = w
	}

	p.resetAll()

	return p
}

// Cap returns the number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// InUse returns the number of active slots.
func (p *Pool) InUse() int {
	return p.next
}

// Slots returns a snapshot of every slot in index order.
func (p *Pool) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	for i, s := range p.slots {
		out[i] = Slot{Index: i, Label: s.label, Active: s.active}
	}

	return out
}

// allocateNext binds label and handler to the next free slot and activates it.
// The handler replaces whatever the slot was bound to before.
func (p *Pool) allocateNext(label string, handler func()) (int, error) {
	if p.next >= len(p.slots) {
		return -1, fmt.Errorf("button %q needs slot #%d, only %d available: %w", label, p.next, len(p.slots), ErrCapacityExceeded)
	}

	idx := p.next
	s := &p.slots[idx]

	s.label = label
	s.handler = handler
	s.active = true

	s.widget.SetLabel(label)
	s.widget.BindClickHandler(handler)
	s.widget.SetActive(true)

	p.next++

	return idx, nil
}

// handler returns the handler bound to an active slot.
func (p *Pool) handler(idx int) (func(), error) {
	if idx < 0 || idx >= p.next || !p.slots[idx].active {
		return nil, fmt.Errorf("slot #%d: %w", idx, ErrSlotInactive)
	}

	return p.slots[idx].handler, nil
}

// resetAll deactivates and unbinds every slot.
func (p *Pool) resetAll() {
	for i := range p.slots {
		s := &p.slots[i]

		s.label = ""
		s.handler = nil
		s.active = false

		s.widget.SetActive(false)
		s.widget.BindClickHandler(nil)
		s.widget.SetLabel("")
	}

	p.next = 0
}
