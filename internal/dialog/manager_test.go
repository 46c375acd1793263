package dialog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlot struct {
	label   string
	active  bool
	handler func()
	binds   int
}

func (f *fakeSlot) SetActive(active bool) { f.active = active }
func (f *fakeSlot) SetLabel(label string) { f.label = label }
func (f *fakeSlot) BindClickHandler(h func()) {
	f.handler = h
	f.binds++
}

func (f *fakeSlot) click() {
	if f.handler != nil {
		f.handler()
	}
}

type fakePanel struct {
	visible bool
	title   string
	body    string
	icon    Icon
}

func (f *fakePanel) SetVisible(visible bool) { f.visible = visible }
func (f *fakePanel) SetTitle(title string)   { f.title = title }
func (f *fakePanel) SetBodyText(text string) { f.body = text }
func (f *fakePanel) SetIcon(icon Icon)       { f.icon = icon }

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) DialogShown(_ uuid.UUID, c Content, allocated int) {
	r.events = append(r.events, fmt.Sprintf("shown %q %d", c.Body(), allocated))
}

func (r *recordingObserver) ButtonPressed(_ uuid.UUID, idx int, label string) {
	r.events = append(r.events, fmt.Sprintf("pressed %d %s", idx, label))
}

func (r *recordingObserver) DialogClosed(uuid.UUID) {
	r.events = append(r.events, "closed")
}

func newTestManager(t *testing.T, n int, opts ...Option) (*Manager, *fakePanel, []*fakeSlot) {
	t.Helper()

	panel := &fakePanel{}
	fakes := make([]*fakeSlot, n)
	widgets := make([]SlotWidget, n)
	for i := range fakes {
		fakes[i] = &fakeSlot{}
		widgets[i] = fakes[i]
	}

	m, err := New(panel, widgets, opts...)
	require.NoError(t, err)

	return m, panel, fakes
}

func assertClosed(t *testing.T, m *Manager, panel *fakePanel, slots []*fakeSlot) {
	t.Helper()

	assert.False(t, m.IsOpen())
	assert.False(t, panel.visible)
	assert.Equal(t, 0, m.InUse())
	assert.Equal(t, uuid.Nil, m.RequestID())

	for i, s := range slots {
		assert.False(t, s.active, "slot %d should be inactive", i)
		assert.Nil(t, s.handler, "slot %d should be unbound", i)
	}
}

func TestNew(t *testing.T) {
	t.Run("starts closed", func(t *testing.T) {
		m, panel, slots := newTestManager(t, 3)
		assert.Equal(t, 3, m.Capacity())
		assertClosed(t, m, panel, slots)
	})

	t.Run("nil panel is not configured", func(t *testing.T) {
		_, err := New(nil, []SlotWidget{&fakeSlot{}})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("no slots is not configured", func(t *testing.T) {
		_, err := New(&fakePanel{}, nil)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("nil slot is not configured", func(t *testing.T) {
		_, err := New(&fakePanel{}, []SlotWidget{&fakeSlot{}, nil})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestShowYesNoCancel(t *testing.T) {
	m, panel, slots := newTestManager(t, 4)

	content := NewContent("Test the YNC dialog box",
		WithButton("YES", func() {}),
		WithButton("NO", func() {}),
		WithButton("CANCEL", func() {}),
	)

	require.NoError(t, m.Show(content))

	assert.True(t, m.IsOpen())
	assert.True(t, panel.visible)
	assert.Equal(t, "Test the YNC dialog box", panel.body)
	assert.Equal(t, Icon(""), panel.icon)
	assert.Equal(t, 3, m.InUse())
	assert.NotEqual(t, uuid.Nil, m.RequestID())

	want := []Slot{
		{Index: 0, Label: "YES", Active: true},
		{Index: 1, Label: "NO", Active: true},
		{Index: 2, Label: "CANCEL", Active: true},
		{Index: 3, Label: "", Active: false},
	}
	assert.Equal(t, want, m.Slots())

	for i, label := range []string{"YES", "NO", "CANCEL"} {
		assert.Equal(t, label, slots[i].label)
		assert.True(t, slots[i].active)
	}
	assert.False(t, slots[3].active)
}

func TestShowTitleAndIcon(t *testing.T) {
	m, panel, slots := newTestManager(t, 2)

	content := NewContent("You have encountered an error",
		WithTitle("Error"),
		WithIcon("⚠"),
		WithButton("OK", nil, WithButtonIcon("✔")),
	)
	require.NoError(t, m.Show(content))

	assert.Equal(t, "Error", panel.title)
	assert.Equal(t, Icon("⚠"), panel.icon)
	assert.Equal(t, "✔ OK", slots[0].label)

	m.Close()
	assert.Equal(t, Icon(""), panel.icon)
	assert.Equal(t, "", panel.title)
	assert.Equal(t, "", panel.body)
}

func TestAddButtonOrderAndCapacity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("capacity %d", n), func(t *testing.T) {
			m, _, slots := newTestManager(t, n)
			id := uuid.New()

			m.mu.Lock()
			defer m.mu.Unlock()

			for i := 0; i < n; i++ {
				idx, err := m.addButton(id, NewButton(fmt.Sprintf("B%d", i), nil))
				require.NoError(t, err)
				assert.Equal(t, i, idx)
			}

			idx, err := m.addButton(id, NewButton("extra", nil))
			assert.ErrorIs(t, err, ErrCapacityExceeded)
			assert.Equal(t, -1, idx)
			assert.Equal(t, n, m.pool.InUse())

			for i, s := range slots {
				assert.Equal(t, fmt.Sprintf("B%d", i), s.label)
				assert.True(t, s.active)
			}
		})
	}
}

func TestShowOverCapacity(t *testing.T) {
	var pressed []string
	m, panel, slots := newTestManager(t, 2)

	content := NewContent("too many",
		WithButton("A", func() { pressed = append(pressed, "A") }),
		WithButton("B", func() { pressed = append(pressed, "B") }),
		WithButton("C", func() { pressed = append(pressed, "C") }),
	)

	err := m.Show(content)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	// The buttons that fit and the text are still shown.
	assert.True(t, m.IsOpen())
	assert.True(t, panel.visible)
	assert.Equal(t, "too many", panel.body)
	assert.Equal(t, 2, m.InUse())
	assert.Equal(t, "A", slots[0].label)
	assert.Equal(t, "B", slots[1].label)

	slots[1].click()
	assert.Equal(t, []string{"B"}, pressed)
	assertClosed(t, m, panel, slots)
}

func TestPressRunsActionAndCloses(t *testing.T) {
	var got []string
	obs := &recordingObserver{}
	m, panel, slots := newTestManager(t, 3, WithObserver(obs))

	content := NewContent("pick",
		WithButton("YES", func() { got = append(got, "yes") }),
		WithButton("NO", func() { got = append(got, "no") }),
		WithButton("CANCEL", func() { got = append(got, "cancel") }),
	)
	require.NoError(t, m.Show(content))

	slots[1].click()

	assert.Equal(t, []string{"no"}, got)
	assertClosed(t, m, panel, slots)
	assert.Equal(t, []string{`shown "pick" 3`, "pressed 1 NO", "closed"}, obs.events)
}

func TestPressByIndex(t *testing.T) {
	var got string
	m, panel, slots := newTestManager(t, 3)

	require.NoError(t, m.Show(NewContent("x",
		WithButton("A", func() { got = "A" }),
		WithButton("B", func() { got = "B" }),
	)))

	assert.ErrorIs(t, m.Press(2), ErrSlotInactive)
	assert.ErrorIs(t, m.Press(-1), ErrSlotInactive)
	assert.True(t, m.IsOpen())

	require.NoError(t, m.Press(0))
	assert.Equal(t, "A", got)
	assertClosed(t, m, panel, slots)

	assert.ErrorIs(t, m.Press(0), ErrSlotInactive)
}

func TestStaleHandlerIsIgnored(t *testing.T) {
	var count int
	m, _, slots := newTestManager(t, 2)

	require.NoError(t, m.Show(NewContent("first", WithButton("OK", func() { count++ }))))
	stale := slots[0].handler

	stale()
	assert.Equal(t, 1, count)

	require.NoError(t, m.Show(NewContent("second", WithButton("OK", func() { count += 10 }))))

	// The first dialog's handler must not fire or close the second dialog.
	stale()
	assert.Equal(t, 1, count)
	assert.True(t, m.IsOpen())

	slots[0].click()
	assert.Equal(t, 11, count)
}

func TestRebindReplacesHandler(t *testing.T) {
	var got []string
	m, _, slots := newTestManager(t, 1)

	for _, name := range []string{"one", "two", "three"} {
		require.NoError(t, m.Show(NewContent(name, WithButton("OK", func() { got = append(got, name) }))))
		slots[0].click()
	}

	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestCloseIsIdempotent(t *testing.T) {
	obs := &recordingObserver{}
	m, panel, slots := newTestManager(t, 2, WithObserver(obs))

	require.NoError(t, m.Show(NewContent("bye", WithButton("OK", nil), WithButton("NO", nil))))

	m.Close()
	assertClosed(t, m, panel, slots)

	m.Close()
	assertClosed(t, m, panel, slots)

	assert.Equal(t, []string{`shown "bye" 2`, "closed"}, obs.events)
}

func TestShowWhileOpen(t *testing.T) {
	m, panel, _ := newTestManager(t, 2)

	require.NoError(t, m.Show(NewContent("first", WithButton("OK", nil))))
	id := m.RequestID()

	err := m.Show(NewContent("second", WithButton("A", nil), WithButton("B", nil)))
	assert.ErrorIs(t, err, ErrDialogOpen)

	assert.Equal(t, "first", panel.body)
	assert.Equal(t, 1, m.InUse())
	assert.Equal(t, id, m.RequestID())
}

func TestShowWithoutButtons(t *testing.T) {
	m, panel, slots := newTestManager(t, 2)

	require.NoError(t, m.Show(NewContent("notice")))
	assert.True(t, m.IsOpen())
	assert.Equal(t, 0, m.InUse())

	m.Close()
	assertClosed(t, m, panel, slots)
}

func TestActionMayCloseItself(t *testing.T) {
	obs := &recordingObserver{}
	m, panel, slots := newTestManager(t, 1, WithObserver(obs))

	require.NoError(t, m.Show(NewContent("x", WithButton("OK", func() { m.Close() }))))
	slots[0].click()

	assertClosed(t, m, panel, slots)
	assert.Equal(t, []string{`shown "x" 1`, "pressed 0 OK", "closed"}, obs.events)
}

func TestMultipleObservers(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	m, _, _ := newTestManager(t, 1, WithObserver(a), WithObserver(nil), WithObserver(b))

	require.NoError(t, m.Show(NewContent("x")))
	m.Close()

	assert.Equal(t, a.events, b.events)
	assert.Len(t, a.events, 2)
}
